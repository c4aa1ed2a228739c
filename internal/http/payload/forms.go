package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// RegisterForm backs both self-registration and admin user creation.
type RegisterForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewRegisterForm(r *http.Request) (RegisterForm, error) {
	if err := r.ParseForm(); err != nil {
		return RegisterForm{}, fmt.Errorf("parse form: %w", err)
	}
	return RegisterForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewLoginForm(r *http.Request) (LoginForm, error) {
	if err := r.ParseForm(); err != nil {
		return LoginForm{}, fmt.Errorf("parse form: %w", err)
	}
	return LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// SaleForm is the new/edit sale form. PurchaseApproved is true when the
// approval checkbox field was present in the submitted form at all; its
// value does not matter.
type SaleForm struct {
	CustomerName     string `json:"customer_name"`
	SaleAmount       string `json:"sale_amount"`
	SaleDescription  string `json:"sale_description"`
	CloseDate        string `json:"close_date"`
	PurchaseApproved bool   `json:"purchase_approval"`
}

func NewSaleForm(r *http.Request) (SaleForm, error) {
	if err := r.ParseForm(); err != nil {
		return SaleForm{}, fmt.Errorf("parse form: %w", err)
	}
	_, approved := r.PostForm["purchase_approval"]
	return SaleForm{
		CustomerName:     r.PostFormValue("customer_name"),
		SaleAmount:       r.PostFormValue("sale_amount"),
		SaleDescription:  r.PostFormValue("sale_description"),
		CloseDate:        r.PostFormValue("close_date"),
		PurchaseApproved: approved,
	}, nil
}

func (f SaleForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.CustomerName,
			validation.Required,
			validation.Length(3, 200).Error("must be between 3 and 200 characters long"),
		),
		validation.Field(&f.SaleAmount, validation.Required),
	)
}

// UserEditForm is the admin edit-user form. Password is optional: leaving
// it empty keeps the stored digest.
type UserEditForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewUserEditForm(r *http.Request) (UserEditForm, error) {
	if err := r.ParseForm(); err != nil {
		return UserEditForm{}, fmt.Errorf("parse form: %w", err)
	}
	return UserEditForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (f UserEditForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
	)
}
