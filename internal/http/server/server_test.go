package server_test

import (
	"audio2score/internal/http/server"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

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
	var (
		srv  *server.HTTPServer
		port string
	)

	BeforeEach(func() {
		port = freePort()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "pong")
		})
		srv = server.NewHTTP(zap.NewNop().Sugar(), handler, port)
	})

	It("should listen on the configured port", func() {
		Expect(srv.Addr()).To(Equal(":" + port))
	})

	It("should serve until shut down", func() {
		errChan := srv.Run()

		url := fmt.Sprintf("http://127.0.0.1:%s/", port)
		Eventually(func() (string, error) {
			resp, err := http.Get(url)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).WithTimeout(5 * time.Second).Should(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report listen failures on the channel", func() {
		l, err := net.Listen("tcp", ":"+port)
		Expect(err).NotTo(HaveOccurred())
		defer l.Close()

		Eventually(srv.Run()).WithTimeout(5 * time.Second).Should(Receive(HaveOccurred()))
	})
})
