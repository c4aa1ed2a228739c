package session_test

import (
	"net/http"
	"net/http/httptest"

	tokenIssuer "github.com/VinBdev/Predict-Your-Sales/pkg/jwt"
	"github.com/VinBdev/Predict-Your-Sales/pkg/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// carryCookies builds a follow-up request carrying every cookie the
// previous response set, the way a browser would.
func carryCookies(w *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

var _ = Describe("Manager", func() {
	var (
		manager *session.Manager
		w       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		manager = session.NewManager(tokenIssuer.NewJWTService([]byte("test-secret")))
		w = httptest.NewRecorder()
	})

	Describe("Login", func() {
		It("authenticates subsequent requests carrying the cookie", func() {
			err := manager.Login(w, "alice")
			Expect(err).NotTo(HaveOccurred())

			req := carryCookies(w)
			username, ok := manager.CurrentUser(req)
			Expect(ok).To(BeTrue())
			Expect(username).To(Equal("alice"))
		})
	})

	Describe("CurrentUser", func() {
		When("no session cookie is present", func() {
			It("reports no user", func() {
				req := httptest.NewRequest("GET", "/", nil)
				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the cookie was signed with a different secret", func() {
			It("reports no user", func() {
				other := session.NewManager(tokenIssuer.NewJWTService([]byte("other-secret")))
				err := other.Login(w, "mallory")
				Expect(err).NotTo(HaveOccurred())

				req := carryCookies(w)
				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the cookie value is garbage", func() {
			It("reports no user", func() {
				req := httptest.NewRequest("GET", "/", nil)
				req.AddCookie(&http.Cookie{Name: "pys_session", Value: "not.a.token"})
				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("Logout", func() {
		It("clears the session so the next request is unauthenticated", func() {
			err := manager.Login(w, "alice")
			Expect(err).NotTo(HaveOccurred())

			out := httptest.NewRecorder()
			manager.Logout(out)

			req := carryCookies(out)
			_, ok := manager.CurrentUser(req)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Flash", func() {
		It("delivers the message once and clears it", func() {
			manager.Flash(w, "You have been logged out")

			req := carryCookies(w)
			next := httptest.NewRecorder()
			message, ok := manager.PopFlash(next, req)
			Expect(ok).To(BeTrue())
			Expect(message).To(Equal("You have been logged out"))

			again := carryCookies(next)
			_, ok = manager.PopFlash(httptest.NewRecorder(), again)
			Expect(ok).To(BeFalse())
		})

		When("no flash is pending", func() {
			It("reports none", func() {
				req := httptest.NewRequest("GET", "/", nil)
				_, ok := manager.PopFlash(httptest.NewRecorder(), req)
				Expect(ok).To(BeFalse())
			})
		})
	})
})
