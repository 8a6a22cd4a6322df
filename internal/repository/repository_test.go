package repository_test

import (
	"context"
	"errors"

	"accountd/internal/db"
	"accountd/internal/repository"
	"accountd/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, "admin", "admin@example.com", "$2a$10$hash")
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(nil)
				fakeStorage.SeedRecordsReturns(nil)
			})

			It("should migrate the user model and seed the superuser", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				models := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(models).To(HaveLen(1))
				Expect(models[0]).To(BeAssignableToTypeOf(&repository.User{}))

				Expect(fakeStorage.SeedRecordsCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedRecordsArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&[]repository.User{}))

				users := *records.(*[]repository.User)
				Expect(users).To(HaveLen(1))
				Expect(users[0].Username).To(Equal("admin"))
				Expect(users[0].IsSuperuser).To(BeTrue())
				Expect(users[0].IsActive).To(BeTrue())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate model(s): migration error"))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(nil)
				fakeStorage.SeedRecordsReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})

		When("no superuser is configured", func() {
			It("should not seed anything", func() {
				// Use an isolated fake: the enclosing JustBeforeEach already
				// calls MigrateAndSeed with a configured superuser.
				storage := new(fake.Storage)
				err := repository.NewUserRepository(storage).MigrateAndSeed(ctx, "", "", "")
				Expect(err).NotTo(HaveOccurred())
				Expect(storage.SeedRecordsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$hash",
				IsActive:     true,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordsReturns(nil)
			})

			It("should persist the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveRecordsCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveRecordsArgsForCall(0)
				Expect(arg).To(Equal(&user))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordsReturns(db.ErrDuplicate)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordsReturns(errors.New("save error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("create user: save error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					u := entity.(*repository.User)
					u.Username = value.(string)
					u.Email = "alice@example.com"
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(errors.New("db down"))
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("get user by username: db down"))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should look up by the email column", func() {
				_, err := repo.GetUserByEmail(ctx, "alice@example.com")
				Expect(err).NotTo(HaveOccurred())

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal("alice@example.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := repo.GetUserByEmail(ctx, "ghost@example.com")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("ListUsers", func() {
		When("the listing succeeds", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(_ context.Context, entities any) error {
					users := entities.(*[]repository.User)
					*users = append(*users,
						repository.User{Username: "alice"},
						repository.User{Username: "bob"})
					return nil
				}
			})

			It("should return all users", func() {
				users, err := repo.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
			})
		})

		When("the listing fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(errors.New("db down"))
			})

			It("should return an error", func() {
				_, err := repo.ListUsers(ctx)
				Expect(err).To(MatchError("list users: db down"))
			})
		})
	})
})
