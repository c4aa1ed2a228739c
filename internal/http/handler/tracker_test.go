package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/handler"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TrackerHandler", func() {
	var (
		trackerHandler *handler.TrackerHandler
		fakeTracker    *fake.TrackerService
		fakeSessions   *fake.SessionManager
		fakeViews      *fake.Renderer
		recorder       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakeTracker = new(fake.TrackerService)
		fakeSessions = new(fake.SessionManager)
		fakeViews = new(fake.Renderer)
		recorder = httptest.NewRecorder()
		trackerHandler = handler.NewTrackerHandler(zap.NewNop().Sugar(), fakeSessions, fakeViews, fakeTracker)
	})

	formRequest := func(target string, values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	Describe("HandleRegister", func() {
		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeTracker.RegisterReturns(core.UserRecord{}, core.ErrUsernameTaken)
			})
			It("flashes the duplicate message and redirects back to the form", func() {
				req := formRequest("/register", url.Values{
					"username": {"george"},
					"password": {"secret"},
				})
				trackerHandler.HandleRegister(recorder, req)

				Expect(fakeSessions.FlashCallCount()).To(Equal(1))
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Username already used"))
				Expect(recorder.Code).To(Equal(http.StatusFound))
				Expect(recorder.Header().Get("Location")).To(Equal("/register"))
				Expect(fakeSessions.LoginCallCount()).To(Equal(0))
			})
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeTracker.RegisterReturns(core.UserRecord{ID: "id-1", Username: "george"}, nil)
			})
			It("opens a session and redirects to the dashboard", func() {
				req := formRequest("/register", url.Values{
					"username": {"George"},
					"password": {"secret"},
				})
				trackerHandler.HandleRegister(recorder, req)

				Expect(fakeSessions.LoginCallCount()).To(Equal(1))
				_, username := fakeSessions.LoginArgsForCall(0)
				Expect(username).To(Equal("george"))
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Registration Successful"))
				Expect(recorder.Header().Get("Location")).To(Equal("/dashboard/"))
			})
		})

		When("the form fails validation", func() {
			It("re-renders the register view with the errors", func() {
				req := formRequest("/register", url.Values{
					"username": {"george"},
				})
				trackerHandler.HandleRegister(recorder, req)

				Expect(fakeTracker.RegisterCallCount()).To(Equal(0))
				Expect(fakeViews.RenderCallCount()).To(Equal(1))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("register.html"))
				Expect(data).To(HaveKey("form_errors"))
			})
		})
	})

	Describe("HandleLogin", func() {
		unknownUser := func() { fakeTracker.AuthenticateReturns(core.UserRecord{}, core.ErrUserNotFound) }
		wrongPassword := func() { fakeTracker.AuthenticateReturns(core.UserRecord{}, core.ErrIncorrectPassword) }

		When("the credentials are bad", func() {
			It("answers both failure modes identically", func() {
				for _, arrange := range []func(){unknownUser, wrongPassword} {
					arrange()
					recorder = httptest.NewRecorder()
					fakeSessions = new(fake.SessionManager)
					trackerHandler = handler.NewTrackerHandler(zap.NewNop().Sugar(), fakeSessions, fakeViews, fakeTracker)

					req := formRequest("/login", url.Values{
						"username": {"george"},
						"password": {"nope"},
					})
					trackerHandler.HandleLogin(recorder, req)

					_, message := fakeSessions.FlashArgsForCall(0)
					Expect(message).To(Equal("Incorrect Username and/or Password"))
					Expect(recorder.Header().Get("Location")).To(Equal("/login"))
					Expect(fakeSessions.LoginCallCount()).To(Equal(0))
				}
			})
		})

		When("the credentials check out", func() {
			BeforeEach(func() {
				fakeTracker.AuthenticateReturns(core.UserRecord{ID: "id-1", Username: "george"}, nil)
			})
			It("opens a session and greets with the submitted casing", func() {
				req := formRequest("/login", url.Values{
					"username": {"George"},
					"password": {"secret"},
				})
				trackerHandler.HandleLogin(recorder, req)

				Expect(fakeSessions.LoginCallCount()).To(Equal(1))
				_, username := fakeSessions.LoginArgsForCall(0)
				Expect(username).To(Equal("george"))
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Welcome, George"))
				Expect(recorder.Header().Get("Location")).To(Equal("/dashboard/"))
			})
		})
	})

	Describe("HandleDashboard", func() {
		When("no session is present", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("", false)
			})
			It("redirects to the login page before touching the store", func() {
				req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
				trackerHandler.HandleDashboard(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusFound))
				Expect(recorder.Header().Get("Location")).To(Equal("/login"))
				Expect(fakeTracker.DashboardCallCount()).To(Equal(0))
				Expect(fakeSessions.FlashCallCount()).To(Equal(0))
			})
		})

		When("the session user exists", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("george", true)
				fakeTracker.DashboardReturns(core.DashboardRecord{Username: "george", Headline: "Q3 goals"}, nil)
			})
			It("renders the dashboard for the session user", func() {
				req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
				trackerHandler.HandleDashboard(recorder, req)

				_, username := fakeTracker.DashboardArgsForCall(0)
				Expect(username).To(Equal("george"))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("dashboard.html"))
				Expect(data["dash"]).To(Equal(core.DashboardRecord{Username: "george", Headline: "Q3 goals"}))
			})
		})

		When("the account vanished underneath the session", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("george", true)
				fakeTracker.DashboardReturns(core.DashboardRecord{}, core.ErrUserNotFound)
			})
			It("drops the session and redirects to login", func() {
				req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
				trackerHandler.HandleDashboard(recorder, req)

				Expect(fakeSessions.LogoutCallCount()).To(Equal(1))
				Expect(recorder.Header().Get("Location")).To(Equal("/login"))
			})
		})
	})

	Describe("HandleLogout", func() {
		It("clears the session and flashes the goodbye", func() {
			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			trackerHandler.HandleLogout(recorder, req)

			Expect(fakeSessions.LogoutCallCount()).To(Equal(1))
			_, message := fakeSessions.FlashArgsForCall(0)
			Expect(message).To(Equal("You have been logged out"))
			Expect(recorder.Header().Get("Location")).To(Equal("/login"))
		})
	})

	Describe("HandleGetSales", func() {
		It("lists sales without requiring a session", func() {
			fakeSessions.CurrentUserReturns("", false)
			fakeTracker.ListSalesReturns([]core.SaleRecord{{ID: "s-1", CustomerName: "Acme"}}, nil)

			req := httptest.NewRequest(http.MethodGet, "/get_sales", nil)
			trackerHandler.HandleGetSales(recorder, req)

			Expect(recorder.Code).NotTo(Equal(http.StatusFound))
			_, name, data := fakeViews.RenderArgsForCall(0)
			Expect(name).To(Equal("sales.html"))
			Expect(data["sales"]).To(HaveLen(1))
		})
	})

	Describe("HandleSearch", func() {
		It("renders an empty listing when nothing matches", func() {
			fakeTracker.SearchSalesReturns([]core.SaleRecord{}, nil)

			req := httptest.NewRequest(http.MethodGet, "/search?query=ghost", nil)
			trackerHandler.HandleSearch(recorder, req)

			_, query := fakeTracker.SearchSalesArgsForCall(0)
			Expect(query).To(Equal("ghost"))
			_, name, data := fakeViews.RenderArgsForCall(0)
			Expect(name).To(Equal("sales.html"))
			Expect(data["sales"]).To(HaveLen(0))
			Expect(data["query"]).To(Equal("ghost"))
		})
	})

	Describe("HandleNewSale", func() {
		When("no session is present", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("", false)
			})
			It("redirects to the login page", func() {
				req := httptest.NewRequest(http.MethodGet, "/new_sales", nil)
				trackerHandler.HandleNewSale(recorder, req)

				Expect(recorder.Header().Get("Location")).To(Equal("/login"))
				Expect(fakeViews.RenderCallCount()).To(Equal(0))
			})
		})

		When("the customer name is too short", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("george", true)
			})
			It("re-renders the form with errors and stores nothing", func() {
				req := formRequest("/new_sales", url.Values{
					"customer_name": {"ab"},
					"sale_amount":   {"1200"},
				})
				trackerHandler.HandleNewSale(recorder, req)

				Expect(fakeTracker.CreateSaleCallCount()).To(Equal(0))
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("new_sales.html"))
				Expect(data).To(HaveKey("form_errors"))
			})
		})

		When("the submission is valid", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("george", true)
				fakeTracker.CreateSaleReturns(core.SaleRecord{ID: "s-1"}, nil)
			})
			It("stamps the session user as the creator", func() {
				req := formRequest("/new_sales", url.Values{
					"customer_name":     {"Acme Corp"},
					"sale_amount":       {"1200"},
					"sale_description":  {"Annual license"},
					"close_date":        {"2026-09-01"},
					"purchase_approval": {"on"},
				})
				trackerHandler.HandleNewSale(recorder, req)

				Expect(fakeTracker.CreateSaleCallCount()).To(Equal(1))
				_, username, msg := fakeTracker.CreateSaleArgsForCall(0)
				Expect(username).To(Equal("george"))
				Expect(msg.CustomerName).To(Equal("Acme Corp"))
				Expect(msg.PurchaseApproved).To(BeTrue())
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Congratulations! Sale successfully uploaded!"))
				Expect(recorder.Header().Get("Location")).To(Equal("/dashboard/"))
			})
		})
	})

	Describe("HandleEditSale", func() {
		BeforeEach(func() {
			fakeSessions.CurrentUserReturns("george", true)
		})

		When("the sale does not exist", func() {
			BeforeEach(func() {
				fakeTracker.GetSaleReturns(core.SaleRecord{}, core.ErrSaleNotFound)
			})
			It("flashes and redirects to the listing", func() {
				req := httptest.NewRequest(http.MethodGet, "/edit_sale/s-404", nil)
				req.SetPathValue("id", "s-404")
				trackerHandler.HandleEditSale(recorder, req)

				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Sale not found"))
				Expect(recorder.Header().Get("Location")).To(Equal("/get_sales"))
			})
		})

		When("a valid replacement is submitted", func() {
			BeforeEach(func() {
				fakeTracker.ReplaceSaleReturns(nil)
				fakeTracker.GetSaleReturns(core.SaleRecord{ID: "s-1", CustomerName: "Acme Corp"}, nil)
			})
			It("replaces the record and re-renders the edit view", func() {
				req := formRequest("/edit_sale/s-1", url.Values{
					"customer_name": {"Acme Corp"},
					"sale_amount":   {"9000"},
				})
				req.SetPathValue("id", "s-1")
				trackerHandler.HandleEditSale(recorder, req)

				Expect(fakeTracker.ReplaceSaleCallCount()).To(Equal(1))
				_, id, msg := fakeTracker.ReplaceSaleArgsForCall(0)
				Expect(id).To(Equal("s-1"))
				Expect(msg.SaleAmount).To(Equal("9000"))
				Expect(msg.PurchaseApproved).To(BeFalse())
				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("edit_sale.html"))
				Expect(data["flash"]).To(Equal("Congratulations! Sale successfully edited!"))
			})
		})

		When("the replacement targets a vanished sale", func() {
			BeforeEach(func() {
				fakeTracker.ReplaceSaleReturns(core.ErrSaleNotFound)
			})
			It("flashes and redirects to the listing", func() {
				req := formRequest("/edit_sale/s-404", url.Values{
					"customer_name": {"Acme Corp"},
					"sale_amount":   {"9000"},
				})
				req.SetPathValue("id", "s-404")
				trackerHandler.HandleEditSale(recorder, req)

				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Sale not found"))
				Expect(recorder.Header().Get("Location")).To(Equal("/get_sales"))
			})
		})
	})

	Describe("HandleDeleteSale", func() {
		BeforeEach(func() {
			fakeSessions.CurrentUserReturns("george", true)
		})
		It("deletes by id and redirects to the listing", func() {
			req := httptest.NewRequest(http.MethodGet, "/delete_sale/s-1", nil)
			req.SetPathValue("id", "s-1")
			trackerHandler.HandleDeleteSale(recorder, req)

			_, id := fakeTracker.DeleteSaleArgsForCall(0)
			Expect(id).To(Equal("s-1"))
			_, message := fakeSessions.FlashArgsForCall(0)
			Expect(message).To(Equal("Sale Successfully Deleted"))
			Expect(recorder.Header().Get("Location")).To(Equal("/get_sales"))
		})
	})

	Describe("admin-only routes", func() {
		When("a member hits the user listing", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("george", true)
				fakeTracker.UserRoleReturns(core.RoleMember, nil)
			})
			It("flashes the refusal and redirects to the dashboard", func() {
				req := httptest.NewRequest(http.MethodGet, "/get_users", nil)
				trackerHandler.HandleGetUsers(recorder, req)

				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("You are not permitted to do that"))
				Expect(recorder.Header().Get("Location")).To(Equal("/dashboard/"))
				Expect(fakeTracker.ListUsersCallCount()).To(Equal(0))
			})
		})

		When("an admin hits the user listing", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("boss", true)
				fakeTracker.UserRoleReturns(core.RoleAdmin, nil)
				fakeTracker.ListUsersReturns([]core.UserRecord{{ID: "id-1", Username: "george"}}, nil)
			})
			It("renders the accounts", func() {
				req := httptest.NewRequest(http.MethodGet, "/get_users", nil)
				trackerHandler.HandleGetUsers(recorder, req)

				_, name, data := fakeViews.RenderArgsForCall(0)
				Expect(name).To(Equal("users.html"))
				Expect(data["users"]).To(HaveLen(1))
			})
		})

		When("an admin updates an account", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("boss", true)
				fakeTracker.UserRoleReturns(core.RoleAdmin, nil)
			})
			It("forwards the new credentials and redirects", func() {
				req := formRequest("/edit_user/id-1", url.Values{
					"username": {"george"},
					"password": {""},
				})
				req.SetPathValue("id", "id-1")
				trackerHandler.HandleEditUser(recorder, req)

				Expect(fakeTracker.ReplaceUserCallCount()).To(Equal(1))
				_, id, msg := fakeTracker.ReplaceUserArgsForCall(0)
				Expect(id).To(Equal("id-1"))
				Expect(msg.Username).To(Equal("george"))
				Expect(msg.Password).To(BeEmpty())
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("User Successfully Updated!"))
				Expect(recorder.Header().Get("Location")).To(Equal("/get_users"))
			})
		})

		When("an admin creates a duplicate account", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("boss", true)
				fakeTracker.UserRoleReturns(core.RoleAdmin, nil)
				fakeTracker.CreateUserReturns(core.UserRecord{}, core.ErrUsernameTaken)
			})
			It("flashes and bounces back to the form", func() {
				req := formRequest("/new_user", url.Values{
					"username": {"george"},
					"password": {"secret"},
				})
				trackerHandler.HandleNewUser(recorder, req)

				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("Username already used"))
				Expect(recorder.Header().Get("Location")).To(Equal("/new_user"))
			})
		})

		When("an admin deletes an account", func() {
			BeforeEach(func() {
				fakeSessions.CurrentUserReturns("boss", true)
				fakeTracker.UserRoleReturns(core.RoleAdmin, nil)
			})
			It("deletes by id and redirects to the listing", func() {
				req := httptest.NewRequest(http.MethodGet, "/delete_user/id-1", nil)
				req.SetPathValue("id", "id-1")
				trackerHandler.HandleDeleteUser(recorder, req)

				_, id := fakeTracker.DeleteUserArgsForCall(0)
				Expect(id).To(Equal("id-1"))
				_, message := fakeSessions.FlashArgsForCall(0)
				Expect(message).To(Equal("User Successfully Deleted"))
				Expect(recorder.Header().Get("Location")).To(Equal("/get_users"))
			})
		})
	})
})
