package payload_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/VinBdev/Predict-Your-Sales/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest("POST", "/new_sales", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var _ = Describe("SaleForm", func() {
	var values url.Values

	BeforeEach(func() {
		values = url.Values{}
		values.Set("customer_name", "Acme Corp")
		values.Set("sale_amount", "1200.50")
		values.Set("sale_description", "annual license renewal")
		values.Set("close_date", "2026-09-01")
	})

	Describe("NewSaleForm", func() {
		It("parses every submitted field", func() {
			form, err := payload.NewSaleForm(formRequest(values))
			Expect(err).NotTo(HaveOccurred())
			Expect(form.CustomerName).To(Equal("Acme Corp"))
			Expect(form.SaleAmount).To(Equal("1200.50"))
			Expect(form.SaleDescription).To(Equal("annual license renewal"))
			Expect(form.CloseDate).To(Equal("2026-09-01"))
		})

		When("the approval checkbox is absent", func() {
			It("parses approval as false", func() {
				form, err := payload.NewSaleForm(formRequest(values))
				Expect(err).NotTo(HaveOccurred())
				Expect(form.PurchaseApproved).To(BeFalse())
			})
		})

		When("the approval checkbox is present", func() {
			It("parses approval as true regardless of value", func() {
				values.Set("purchase_approval", "on")
				form, err := payload.NewSaleForm(formRequest(values))
				Expect(err).NotTo(HaveOccurred())
				Expect(form.PurchaseApproved).To(BeTrue())
			})
		})
	})

	Describe("Validate", func() {
		It("accepts a customer name of length 3", func() {
			values.Set("customer_name", "Bob")
			form, _ := payload.NewSaleForm(formRequest(values))
			Expect(form.Validate()).To(Succeed())
		})

		It("accepts a customer name of length 200", func() {
			values.Set("customer_name", strings.Repeat("a", 200))
			form, _ := payload.NewSaleForm(formRequest(values))
			Expect(form.Validate()).To(Succeed())
		})

		It("rejects a customer name of length 2", func() {
			values.Set("customer_name", "Bo")
			form, _ := payload.NewSaleForm(formRequest(values))
			err := form.Validate()
			Expect(err).To(HaveOccurred())
			Expect(payload.ErrorList(err)).To(ContainElement(ContainSubstring("customer_name")))
		})

		It("rejects a customer name of length 201", func() {
			values.Set("customer_name", strings.Repeat("a", 201))
			form, _ := payload.NewSaleForm(formRequest(values))
			Expect(form.Validate()).To(HaveOccurred())
		})

		It("rejects a missing sale amount", func() {
			values.Del("sale_amount")
			form, _ := payload.NewSaleForm(formRequest(values))
			Expect(form.Validate()).To(HaveOccurred())
		})
	})
})

var _ = Describe("RegisterForm", func() {
	It("requires both username and password", func() {
		form := payload.RegisterForm{Username: "alice"}
		err := form.Validate()
		Expect(err).To(HaveOccurred())
		Expect(payload.ErrorList(err)).To(ContainElement(ContainSubstring("password")))
	})

	It("accepts a complete form", func() {
		form := payload.RegisterForm{Username: "alice", Password: "s3cret"}
		Expect(form.Validate()).To(Succeed())
	})
})

var _ = Describe("UserEditForm", func() {
	It("allows an empty password", func() {
		form := payload.UserEditForm{Username: "alice"}
		Expect(form.Validate()).To(Succeed())
	})

	It("requires a username", func() {
		form := payload.UserEditForm{Password: "newpass"}
		Expect(form.Validate()).To(HaveOccurred())
	})
})
