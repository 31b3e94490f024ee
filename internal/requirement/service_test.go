package requirement_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/user"
)

func TestRequirementService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Requirement Service Suite")
}

var _ = Describe("RequirementService", func() {
	var (
		service     *requirement.Service
		repo        *requirement.MemoryRepository
		userService *user.Service
		recruiter   *user.User
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo = requirement.NewMemoryRepository()
		userService = user.NewService(user.NewMemoryRepository(), bcrypt.MinCost, logger)
		service = requirement.NewService(repo, userService, logger)

		var err error
		recruiter, err = userService.CreateUser(user.CreateUserDTO{
			Username: "recruiter",
			Password: "secret123",
			Email:    "recruiter@example.com",
			Role:     "recruiter",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	createRequirement := func() *requirement.Requirement {
		req, err := service.CreateRequirement(requirement.CreateRequirementDTO{
			Title:      "Backend Engineer",
			Department: "Engineering",
			Skills:     []string{"go", "postgres"},
			Experience: 3,
			Location:   "Remote",
		}, 1)
		Expect(err).NotTo(HaveOccurred())
		return req
	}

	Describe("CreateRequirement", func() {
		It("should default status to draft and priority to medium", func() {
			req := createRequirement()

			Expect(req.Status).To(Equal(requirement.StatusDraft))
			Expect(req.Priority).To(Equal(requirement.PriorityMedium))
			Expect(req.CreatedBy).To(Equal(int64(1)))
		})

		It("should reject an unknown priority", func() {
			_, err := service.CreateRequirement(requirement.CreateRequirementDTO{
				Title:      "Backend Engineer",
				Department: "Engineering",
				Priority:   "critical",
			}, 1)
			Expect(err).To(HaveOccurred())
		})

		It("should require a title", func() {
			_, err := service.CreateRequirement(requirement.CreateRequirementDTO{
				Department: "Engineering",
			}, 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetStatus", func() {
		It("should accept any member of the status enum regardless of the current value", func() {
			req := createRequirement()

			// draft straight to closed, no intermediate step required
			updated, err := service.SetStatus(req.ID, requirement.StatusDTO{Status: requirement.StatusClosed})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(requirement.StatusClosed))

			// and back again
			updated, err = service.SetStatus(req.ID, requirement.StatusDTO{Status: requirement.StatusDraft})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(requirement.StatusDraft))
		})

		It("should reject a value outside the enum", func() {
			req := createRequirement()

			_, err := service.SetStatus(req.ID, requirement.StatusDTO{Status: "archived"})
			Expect(err).To(HaveOccurred())

			stored, err := service.GetRequirement(req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(requirement.StatusDraft))
		})

		It("should return not found for an unknown requirement", func() {
			_, err := service.SetStatus(9999, requirement.StatusDTO{Status: requirement.StatusApproved})
			Expect(err).To(MatchError(internal.ErrRequirementNotFound))
		})
	})

	Describe("AssignRecruiter", func() {
		It("should assign a recruiter to a requirement", func() {
			req := createRequirement()

			a, err := service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(a.RequirementID).To(Equal(req.ID))
			Expect(a.RecruiterID).To(Equal(recruiter.ID))
		})

		It("should reject a duplicate assignment and keep a single row", func() {
			req := createRequirement()

			_, err := service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).To(MatchError(internal.ErrAlreadyAssigned))

			recruiters, err := service.ListRecruiters(req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recruiters).To(HaveLen(1))
		})

		It("should reject an unknown recruiter", func() {
			req := createRequirement()

			_, err := service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: 9999})
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("should reject an unknown requirement", func() {
			_, err := service.AssignRecruiter(9999, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).To(MatchError(internal.ErrRequirementNotFound))
		})
	})

	Describe("UnassignRecruiter", func() {
		It("should remove an existing assignment", func() {
			req := createRequirement()
			_, err := service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.UnassignRecruiter(req.ID, recruiter.ID)).To(Succeed())

			recruiters, err := service.ListRecruiters(req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recruiters).To(BeEmpty())
		})

		It("should return an error when the assignment does not exist", func() {
			req := createRequirement()

			err := service.UnassignRecruiter(req.ID, recruiter.ID)
			Expect(err).To(MatchError(internal.ErrAssignmentNotFound))
		})
	})

	Describe("ListRecruiters", func() {
		It("should skip assignments whose account was deleted", func() {
			req := createRequirement()
			admin, err := userService.CreateUser(user.CreateUserDTO{
				Username: "admin", Password: "admin123", Email: "admin@example.com", Role: "admin",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).NotTo(HaveOccurred())

			Expect(userService.DeleteUser(recruiter.ID, admin.ID)).To(Succeed())

			recruiters, err := service.ListRecruiters(req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recruiters).To(BeEmpty())
		})
	})

	Describe("DeleteRequirement", func() {
		It("should delete the requirement and its assignments", func() {
			req := createRequirement()
			_, err := service.AssignRecruiter(req.ID, requirement.AssignRecruiterDTO{RecruiterID: recruiter.ID})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteRequirement(req.ID)).To(Succeed())

			_, err = service.GetRequirement(req.ID)
			Expect(err).To(MatchError(internal.ErrRequirementNotFound))
		})
	})
})
