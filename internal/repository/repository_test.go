package repository_test

import (
	"context"
	"errors"

	"todoapi/internal/db"
	"todoapi/internal/repository"
	"todoapi/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr(s string) *string {
	return &s
}

var _ = Describe("TodoRepository", func() {
	var (
		repo        *repository.TodoRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTodoRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate users and todos", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Todo{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("FindUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.FindUserByEmail(ctx, "a@x.com")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, conds db.Conditions, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{ID: 1, Email: "a@x.com", HashedPassword: "hash"}
					return nil
				}
			})

			It("should look it up by email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(int64(1)))
				Expect(user.HashedPassword).To(Equal("hash"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, conds, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(conds).To(Equal(db.Conditions{"email": "a@x.com"}))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "a@x.com", "hash")
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.User).ID = 42
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(repository.User{ID: 42, Email: "a@x.com", HashedPassword: "hash"}))
			})
		})

		When("the email is already taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("should return ErrDuplicateEmail", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateEmail))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateTodo", func() {
		var (
			todo repository.Todo
			err  error
		)

		JustBeforeEach(func() {
			todo, err = repo.CreateTodo(ctx, "Buy milk", nil, 7)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.Todo).ID = 1
					return nil
				}
			})

			It("should return the todo owned by the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo).To(Equal(repository.Todo{ID: 1, Title: "Buy milk", UserID: 7}))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListTodos", func() {
		var (
			todos []repository.Todo
			err   error
		)

		JustBeforeEach(func() {
			todos, err = repo.ListTodos(ctx, 7)
		})

		When("the owner has todos", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, conds db.Conditions, dest any) error {
					ts := dest.(*[]repository.Todo)
					*ts = []repository.Todo{
						{ID: 1, Title: "a", UserID: 7},
						{ID: 2, Title: "b", UserID: 7},
					}
					return nil
				}
			})

			It("should filter by owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(HaveLen(2))

				_, conds, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(conds).To(Equal(db.Conditions{"user_id": int64(7)}))
			})
		})

		When("the owner has no todos", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).NotTo(BeNil())
				Expect(todos).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTodo", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetTodo(ctx, 1, 7)
		})

		It("should filter by id and owner", func() {
			Expect(err).NotTo(HaveOccurred())
			_, conds, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(conds).To(Equal(db.Conditions{"id": int64(1), "user_id": int64(7)}))
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrTodoNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})
	})

	Describe("UpdateTodo", func() {
		var (
			patch repository.TodoPatch
			todo  repository.Todo
			err   error
		)

		BeforeEach(func() {
			patch = repository.TodoPatch{Title: ptr("Z")}
			fakeStorage.UpdateOneByStub = func(ctx context.Context, conds db.Conditions, fields map[string]any, dest any) error {
				t := dest.(*repository.Todo)
				*t = repository.Todo{ID: 1, Title: "Z", Description: ptr("Y"), UserID: 7}
				return nil
			}
		})

		JustBeforeEach(func() {
			todo, err = repo.UpdateTodo(ctx, 1, 7, patch)
		})

		It("should send only the supplied fields", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(todo.Title).To(Equal("Z"))
			Expect(*todo.Description).To(Equal("Y"))

			_, conds, fields, _ := fakeStorage.UpdateOneByArgsForCall(0)
			Expect(conds).To(Equal(db.Conditions{"id": int64(1), "user_id": int64(7)}))
			Expect(fields).To(Equal(map[string]any{"title": "Z"}))
		})

		When("both fields are supplied", func() {
			BeforeEach(func() {
				patch = repository.TodoPatch{Title: ptr("Z"), Description: ptr("")}
			})

			It("should send both", func() {
				_, _, fields, _ := fakeStorage.UpdateOneByArgsForCall(0)
				Expect(fields).To(Equal(map[string]any{"title": "Z", "description": ""}))
			})
		})

		When("the description is cleared", func() {
			BeforeEach(func() {
				patch = repository.TodoPatch{ClearDescription: true}
			})

			It("should set the column to null", func() {
				_, _, fields, _ := fakeStorage.UpdateOneByArgsForCall(0)
				Expect(fields).To(HaveLen(1))
				Expect(fields).To(HaveKeyWithValue("description", BeNil()))
			})
		})

		When("a description and a clear are both given", func() {
			BeforeEach(func() {
				patch = repository.TodoPatch{Description: ptr("new"), ClearDescription: true}
			})

			It("should prefer the new value", func() {
				_, _, fields, _ := fakeStorage.UpdateOneByArgsForCall(0)
				Expect(fields).To(Equal(map[string]any{"description": "new"}))
			})
		})

		When("nothing is supplied", func() {
			BeforeEach(func() {
				patch = repository.TodoPatch{}
			})

			It("should send an empty field set", func() {
				_, _, fields, _ := fakeStorage.UpdateOneByArgsForCall(0)
				Expect(fields).To(BeEmpty())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateOneByStub = nil
				fakeStorage.UpdateOneByReturns(db.ErrNotFound)
			})

			It("should return ErrTodoNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.UpdateOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteTodo", func() {
		var (
			todo repository.Todo
			err  error
		)

		JustBeforeEach(func() {
			todo, err = repo.DeleteTodo(ctx, 1, 7)
		})

		When("the todo exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteOneByStub = func(ctx context.Context, conds db.Conditions, dest any) error {
					t := dest.(*repository.Todo)
					*t = repository.Todo{ID: 1, Title: "Buy milk", UserID: 7}
					return nil
				}
			})

			It("should return the removed record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todo).To(Equal(repository.Todo{ID: 1, Title: "Buy milk", UserID: 7}))

				_, conds, _ := fakeStorage.DeleteOneByArgsForCall(0)
				Expect(conds).To(Equal(db.Conditions{"id": int64(1), "user_id": int64(7)}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteOneByReturns(db.ErrNotFound)
			})

			It("should return ErrTodoNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})
	})
})
