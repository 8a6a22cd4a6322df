package core_test

import (
	"context"
	"errors"

	"accountd/internal/core"
	"accountd/internal/core/fake"
	"accountd/internal/repository"
	tokenIssuer "accountd/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Accounts", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		accounts *core.Accounts

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		accounts = core.NewAccounts(fakeLogger, fakeRepo, fakeJWT, 24)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg    core.RegisterMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secretpass",
			}
		})

		JustBeforeEach(func() {
			record, err = accounts.Register(ctx, msg)
		})

		When("the user is new", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("should persist an active user with a bcrypt hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Username).To(Equal(msg.Username))
				Expect(record.Email).To(Equal(msg.Email))
				Expect(record.ID).NotTo(BeEmpty())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.IsActive).To(BeTrue())
				Expect(user.IsSuperuser).To(BeFalse())
				Expect(user.PasswordHash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte(msg.Password))).To(Succeed())
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Lookup", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = accounts.Lookup(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:       "user-id",
					Username: "alice",
					Email:    "alice@example.com",
					IsActive: true,
				}, nil)
			})

			It("should return the user record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("user-id"))
				Expect(record.Username).To(Equal("alice"))

				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = accounts.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					IsActive:     true,
					IsSuperuser:  true,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    userId,
					Superuser:  true,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("the identifier is an email address", func() {
			BeforeEach(func() {
				authMsg.Username = "testuser@example.com"

				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:           userId,
					Username:     "testuser",
					Email:        authMsg.Username,
					PasswordHash: hashedPassword,
					IsActive:     true,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should fall back to the email lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("testuser@example.com"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					IsActive:     true,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("the user is inactive", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					IsActive:     false,
				}, nil)
			})

			It("should return user inactive error", func() {
				Expect(err).To(MatchError(core.ErrUserInactive))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					IsActive:     true,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("List", func() {
		var (
			records []core.UserRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = accounts.List(ctx, "some.token")
		})

		When("the token belongs to a superuser", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":       "admin-id",
					"superuser": true,
				}, nil)
				fakeRepo.ListUsersReturns([]repository.User{
					{Username: "alice"},
					{Username: "bob"},
				}, nil)
			})

			It("should return all user records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Username).To(Equal("alice"))

				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return an error without touching the repository", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.ListUsersCallCount()).To(Equal(0))
			})
		})

		When("the token belongs to a regular user", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":       "user-id",
					"superuser": false,
				}, nil)
			})

			It("should return not superuser error", func() {
				Expect(err).To(MatchError(core.ErrNotSuperuser))
				Expect(fakeRepo.ListUsersCallCount()).To(Equal(0))
			})
		})

		When("the listing fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"superuser": true}, nil)
				fakeRepo.ListUsersReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
