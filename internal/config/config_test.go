package config_test

import (
	"os"

	"github.com/VinBdev/Predict-Your-Sales/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App config", func() {
	setAll := func() {
		GinkgoT().Setenv("DB_NAME", "sales")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost:5432/sales")
		GinkgoT().Setenv("SESSION_SECRET", "super-secret")
		GinkgoT().Setenv("BIND_ADDR", "0.0.0.0")
		GinkgoT().Setenv("API_PORT", "8080")
	}

	When("every variable is set", func() {
		It("returns the populated config", func() {
			setAll()

			conf, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.DBName).To(Equal("sales"))
			Expect(conf.DBConnectionURL).To(Equal("postgres://localhost:5432/sales"))
			Expect(conf.SessionSecret).To(Equal("super-secret"))
			Expect(conf.BindAddr).To(Equal("0.0.0.0"))
			Expect(conf.Port).To(Equal("8080"))
		})
	})

	When("a variable is missing", func() {
		It("names the missing key in the error", func() {
			setAll()
			Expect(os.Unsetenv("SESSION_SECRET")).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})
})
