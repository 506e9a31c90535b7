package server_test

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"todoapi/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("should serve until shut down", func() {
		port := freePort()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		srv := server.NewHTTP(zap.NewNop().Sugar(), handler, port)
		errChan := srv.Run()

		Eventually(func() (int, error) {
			resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%s/", port))
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusTeapot))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report a port that cannot be bound", func() {
		l, err := net.Listen("tcp", ":0")
		Expect(err).NotTo(HaveOccurred())
		defer l.Close()
		port := strconv.Itoa(l.Addr().(*net.TCPAddr).Port)

		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), port)

		var runErr error
		Eventually(srv.Run()).Should(Receive(&runErr))
		Expect(runErr).To(HaveOccurred())
		Expect(runErr).NotTo(MatchError(http.ErrServerClosed))
	})
})
