package config_test

import (
	"os"
	"path/filepath"

	"accountd/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		configYAML string
		app        config.App
		err        error
	)

	BeforeEach(func() {
		configYAML = `
server:
  host: 0.0.0.0
  port: "8080"
database:
  driver: postgres
  host: localhost
  port: 5432
  username: app
  password: secret
  database: accounts
  auto_migrate: true
jwt:
  secret: changeme
cors:
  allowed_origins:
    - http://localhost:5173
superuser:
  username: admin
  email: admin@example.com
  password: admin
`
	})

	JustBeforeEach(func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte(configYAML), 0o600)).To(Succeed())
		GinkgoT().Setenv("CONFIG_PATH", path)

		app, err = config.NewApp()
	})

	It("should parse the yaml file into the typed config", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Server.Port).To(Equal("8080"))
		Expect(app.Database.Driver).To(Equal("postgres"))
		Expect(app.Database.AutoMigrate).To(BeTrue())
		Expect(app.CORS.AllowedOrigins).To(ConsistOf("http://localhost:5173"))
		Expect(app.Superuser.Email).To(Equal("admin@example.com"))
	})

	It("should default the jwt expiration to 24 hours", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app.JWT.ExpireHours).To(Equal(24))
	})

	When("environment overrides are set", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("ACCOUNTD_DATABASE__PASSWORD", "fromenv")
			GinkgoT().Setenv("ACCOUNTD_JWT__SECRET", "envsecret")
		})

		It("should prefer the environment values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Database.Password).To(Equal("fromenv"))
			Expect(app.JWT.Secret).To(Equal("envsecret"))
		})
	})

	When("environment overrides target keys containing an underscore", func() {
		BeforeEach(func() {
			configYAML = `
database:
  driver: sqlite
  database: ./accounts.db
  auto_migrate: false
jwt:
  secret: changeme
  expire_hours: 24
`
			GinkgoT().Setenv("ACCOUNTD_DATABASE__AUTO_MIGRATE", "true")
			GinkgoT().Setenv("ACCOUNTD_JWT__EXPIRE_HOURS", "48")
		})

		It("should apply them like any other key", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Database.AutoMigrate).To(BeTrue())
			Expect(app.JWT.ExpireHours).To(Equal(48))
		})
	})

	Describe("DSN", func() {
		It("should assemble a postgres connection string", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Database.DSN()).To(Equal(
				"host=localhost port=5432 user=app password=secret dbname=accounts sslmode=disable"))
		})

		When("the driver is sqlite", func() {
			BeforeEach(func() {
				configYAML = `
database:
  driver: sqlite
  database: ./data/accounts.db
`
			})

			It("should return the file path", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Database.DSN()).To(Equal("./data/accounts.db"))
			})
		})
	})
})
