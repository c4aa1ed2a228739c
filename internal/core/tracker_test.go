package core_test

import (
	"context"
	"errors"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/core/fake"
	"github.com/VinBdev/Predict-Your-Sales/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		tracker *core.Tracker

		fakeErr        error
		hashedPassword string
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		tracker = core.NewTracker(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
		hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "NewUser",
				Password: "testpass",
			}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			user, err = tracker.Register(ctx, msg)
		})

		When("the username is free", func() {
			It("inserts a member account with a lowercased username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("newuser"))
				Expect(user.Role).To(Equal(core.RoleMember))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, lookedUp := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(lookedUp).To(Equal("newuser"))

				Expect(fakeRepo.InsertUserCallCount()).To(Equal(1))
				_, inserted := fakeRepo.InsertUserArgsForCall(0)
				Expect(inserted.Username).To(Equal("newuser"))
				Expect(inserted.Role).To(Equal(repository.RoleMember))
				Expect(inserted.ID).NotTo(BeEmpty())
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(inserted.PasswordHash), []byte("testpass"))).To(Succeed())
			})
		})

		When("the username is already taken, in any casing", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{Username: "newuser"}, nil)
			})

			It("rejects the registration without inserting", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeRepo.InsertUserCallCount()).To(Equal(0))
			})
		})

		When("the duplicate check fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.InsertUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg  core.AuthMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{
				Username: "TestUser",
				Password: "testpass",
			}
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           uuid.NewString(),
				Username:     "testuser",
				PasswordHash: hashedPassword,
				Role:         repository.RoleMember,
			}, nil)
		})

		JustBeforeEach(func() {
			user, err = tracker.Authenticate(ctx, msg)
		})

		When("the credentials are correct", func() {
			It("returns the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("testuser"))

				_, lookedUp := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(lookedUp).To(Equal("testuser"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				msg.Password = "wrongpass"
			})

			It("returns incorrect password", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})
	})

	Describe("Dashboard", func() {
		var (
			dash core.DashboardRecord
			err  error
		)

		BeforeEach(func() {
			fakeRepo.GetUserByUsernameReturns(repository.User{Username: "alice"}, nil)
			fakeRepo.GetDashboardReturns(repository.DashboardInfo{
				Username:    "alice",
				Headline:    "Q3 pipeline",
				SalesTarget: "50000",
			}, nil)
		})

		JustBeforeEach(func() {
			dash, err = tracker.Dashboard(ctx, "alice")
		})

		It("returns the dashboard panel", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dash.Username).To(Equal("alice"))
			Expect(dash.Headline).To(Equal("Q3 pipeline"))
			Expect(dash.SalesTarget).To(Equal("50000"))
		})

		When("no dashboard row exists for the user", func() {
			BeforeEach(func() {
				fakeRepo.GetDashboardReturns(repository.DashboardInfo{}, repository.ErrDashboardNotFound)
			})

			It("returns an empty panel without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dash.Username).To(Equal("alice"))
				Expect(dash.Headline).To(BeEmpty())
			})
		})

		When("the session user no longer exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("CreateSale", func() {
		var (
			msg  core.SaleMessage
			sale core.SaleRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.SaleMessage{
				CustomerName:     "Acme Corp",
				SaleAmount:       "1200.50",
				SaleDescription:  "annual license",
				CloseDate:        "2026-09-01",
				PurchaseApproved: true,
			}
		})

		JustBeforeEach(func() {
			sale, err = tracker.CreateSale(ctx, "alice", msg)
		})

		It("stamps the creator and normalizes the approval flag", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(sale.ID).NotTo(BeEmpty())
			Expect(sale.CreatedBy).To(Equal("alice"))
			Expect(sale.PurchaseApproval).To(Equal("yes"))

			Expect(fakeRepo.InsertSaleCallCount()).To(Equal(1))
			_, inserted := fakeRepo.InsertSaleArgsForCall(0)
			Expect(inserted.CustomerName).To(Equal("Acme Corp"))
			Expect(inserted.CreatedBy).To(Equal("alice"))
			Expect(inserted.PurchaseApproval).To(Equal("yes"))
		})

		When("the approval checkbox was absent", func() {
			BeforeEach(func() {
				msg.PurchaseApproved = false
			})

			It("stores approval as no", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sale.PurchaseApproval).To(Equal("no"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.InsertSaleReturns(fakeErr)
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ReplaceSale", func() {
		var (
			saleID string
			msg    core.SaleMessage
			err    error
		)

		BeforeEach(func() {
			saleID = uuid.NewString()
			msg = core.SaleMessage{
				CustomerName:     "Updated Corp",
				SaleAmount:       "900",
				SaleDescription:  "renegotiated",
				CloseDate:        "2026-10-01",
				PurchaseApproved: false,
			}
			fakeRepo.GetSaleReturns(repository.Sale{
				ID:        saleID,
				CreatedBy: "original-owner",
			}, nil)
		})

		JustBeforeEach(func() {
			err = tracker.ReplaceSale(ctx, saleID, msg)
		})

		It("replaces every field but keeps the original creator", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.ReplaceSaleCallCount()).To(Equal(1))
			_, id, replaced := fakeRepo.ReplaceSaleArgsForCall(0)
			Expect(id).To(Equal(saleID))
			Expect(replaced.CustomerName).To(Equal("Updated Corp"))
			Expect(replaced.SaleAmount).To(Equal("900"))
			Expect(replaced.PurchaseApproval).To(Equal("no"))
			Expect(replaced.CreatedBy).To(Equal("original-owner"))
		})

		When("the sale does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetSaleReturns(repository.Sale{}, repository.ErrSaleNotFound)
			})

			It("returns sale not found and writes nothing", func() {
				Expect(err).To(MatchError(core.ErrSaleNotFound))
				Expect(fakeRepo.ReplaceSaleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteSale", func() {
		It("deletes by id without checking existence first", func() {
			err := tracker.DeleteSale(ctx, "some-id")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.DeleteSalesCallCount()).To(Equal(1))
			_, id := fakeRepo.DeleteSalesArgsForCall(0)
			Expect(id).To(Equal("some-id"))
		})
	})

	Describe("SearchSales", func() {
		When("nothing matches", func() {
			BeforeEach(func() {
				fakeRepo.SearchSalesReturns([]repository.Sale{}, nil)
			})

			It("returns an empty listing, not an error", func() {
				records, err := tracker.SearchSales(ctx, "nobody")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})
	})

	Describe("ReplaceUser", func() {
		var (
			userID string
			msg    core.UserUpdateMessage
			err    error
		)

		BeforeEach(func() {
			userID = uuid.NewString()
			msg = core.UserUpdateMessage{Username: "Alice"}
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:           userID,
				Username:     "alice",
				PasswordHash: hashedPassword,
				Role:         repository.RoleAdmin,
			}, nil)
		})

		JustBeforeEach(func() {
			err = tracker.ReplaceUser(ctx, userID, msg)
		})

		When("no new password was submitted", func() {
			It("keeps the stored digest and the role", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.ReplaceUserCallCount()).To(Equal(1))
				_, id, replaced := fakeRepo.ReplaceUserArgsForCall(0)
				Expect(id).To(Equal(userID))
				Expect(replaced.Username).To(Equal("alice"))
				Expect(replaced.PasswordHash).To(Equal(hashedPassword))
				Expect(replaced.Role).To(Equal(repository.RoleAdmin))
			})
		})

		When("a new password was submitted", func() {
			BeforeEach(func() {
				msg.Password = "freshpass"
			})

			It("re-hashes the digest", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, replaced := fakeRepo.ReplaceUserArgsForCall(0)
				Expect(replaced.PasswordHash).NotTo(Equal(hashedPassword))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(replaced.PasswordHash), []byte("freshpass"))).To(Succeed())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found and writes nothing", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.ReplaceUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UserRole", func() {
		BeforeEach(func() {
			fakeRepo.GetUserByUsernameReturns(repository.User{
				Username: "root",
				Role:     repository.RoleAdmin,
			}, nil)
		})

		It("reports the account role", func() {
			role, err := tracker.UserRole(ctx, "root")
			Expect(err).NotTo(HaveOccurred())
			Expect(role).To(Equal(repository.RoleAdmin))
		})
	})
})
