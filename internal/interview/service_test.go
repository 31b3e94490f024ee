package interview_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/candidate"
	"github.com/hirestack/applicant-tracking/internal/interview"
	"github.com/hirestack/applicant-tracking/internal/requirement"
	"github.com/hirestack/applicant-tracking/internal/stage"
	"github.com/hirestack/applicant-tracking/internal/user"
)

func TestInterviewService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Interview Service Suite")
}

var _ = Describe("InterviewService", func() {
	var (
		service *interview.Service
		cand    *candidate.Candidate
		req     *requirement.Requirement
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		stageService := stage.NewService(stage.NewMemoryRepository(), logger)
		userService := user.NewService(user.NewMemoryRepository(), bcrypt.MinCost, logger)
		requirementService := requirement.NewService(requirement.NewMemoryRepository(), userService, logger)
		candidateService := candidate.NewService(candidate.NewMemoryRepository(), stageService, requirementService, logger)
		service = interview.NewService(interview.NewMemoryRepository(), candidateService, requirementService, logger)

		_, err := stageService.CreateStage(stage.CreateStageDTO{Name: "Applied", Order: 1, IsDefault: true})
		Expect(err).NotTo(HaveOccurred())

		req, err = requirementService.CreateRequirement(requirement.CreateRequirementDTO{
			Title:      "Backend Engineer",
			Department: "Engineering",
		}, 1)
		Expect(err).NotTo(HaveOccurred())

		cand, err = candidateService.CreateCandidate(candidate.CreateCandidateDTO{
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			RequirementID: req.ID,
		}, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	schedule := func(at time.Time) *interview.Interview {
		iv, err := service.ScheduleInterview(interview.CreateInterviewDTO{
			CandidateID:   cand.ID,
			RequirementID: req.ID,
			ScheduledTime: at,
			Duration:      60,
			Interviewers:  []int64{1, 2},
			Type:          interview.TypeTechnical,
			Location:      "Zoom",
		})
		Expect(err).NotTo(HaveOccurred())
		return iv
	}

	Describe("ScheduleInterview", func() {
		It("should schedule with status scheduled", func() {
			iv := schedule(time.Now().Add(48 * time.Hour))

			Expect(iv.ID).NotTo(BeZero())
			Expect(iv.Status).To(Equal(interview.StatusScheduled))
			Expect(iv.Interviewers).To(HaveLen(2))
		})

		It("should reject an unknown interview type", func() {
			_, err := service.ScheduleInterview(interview.CreateInterviewDTO{
				CandidateID:   cand.ID,
				RequirementID: req.ID,
				ScheduledTime: time.Now().Add(time.Hour),
				Duration:      60,
				Type:          "chat",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown candidate", func() {
			_, err := service.ScheduleInterview(interview.CreateInterviewDTO{
				CandidateID:   9999,
				RequirementID: req.ID,
				ScheduledTime: time.Now().Add(time.Hour),
				Duration:      60,
				Type:          interview.TypeScreening,
			})
			Expect(err).To(MatchError(internal.ErrCandidateNotFound))
		})

		It("should require a positive duration", func() {
			_, err := service.ScheduleInterview(interview.CreateInterviewDTO{
				CandidateID:   cand.ID,
				RequirementID: req.ID,
				ScheduledTime: time.Now().Add(time.Hour),
				Type:          interview.TypeScreening,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetStatus", func() {
		It("should accept any enum member regardless of the current value", func() {
			iv := schedule(time.Now().Add(time.Hour))

			updated, err := service.SetStatus(iv.ID, interview.StatusDTO{Status: interview.StatusNoShow})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(interview.StatusNoShow))

			updated, err = service.SetStatus(iv.ID, interview.StatusDTO{Status: interview.StatusScheduled})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(interview.StatusScheduled))
		})

		It("should reject a value outside the enum", func() {
			iv := schedule(time.Now().Add(time.Hour))

			_, err := service.SetStatus(iv.ID, interview.StatusDTO{Status: "postponed"})
			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown interview", func() {
			_, err := service.SetStatus(9999, interview.StatusDTO{Status: interview.StatusCompleted})
			Expect(err).To(MatchError(internal.ErrInterviewNotFound))
		})
	})

	Describe("ListInterviews", func() {
		It("should return only future scheduled interviews with the upcoming filter", func() {
			schedule(time.Now().Add(-time.Hour))
			future := schedule(time.Now().Add(time.Hour))
			canceled := schedule(time.Now().Add(2 * time.Hour))

			_, err := service.SetStatus(canceled.ID, interview.StatusDTO{Status: interview.StatusCanceled})
			Expect(err).NotTo(HaveOccurred())

			upcoming, err := service.ListInterviews(interview.Filter{UpcomingOnly: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(upcoming).To(HaveLen(1))
			Expect(upcoming[0].ID).To(Equal(future.ID))

			all, err := service.ListInterviews(interview.Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))

			forCandidate, err := service.ListInterviews(interview.Filter{CandidateID: cand.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(forCandidate).To(HaveLen(3))
		})
	})

	Describe("Feedback", func() {
		It("should record and list feedback", func() {
			iv := schedule(time.Now().Add(time.Hour))

			fb, err := service.SubmitFeedback(interview.CreateFeedbackDTO{
				InterviewID:    iv.ID,
				Rating:         4,
				Strengths:      []string{"communication"},
				Weaknesses:     []string{"system design depth"},
				Comments:       "solid overall",
				Recommendation: interview.RecommendYes,
			}, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.ProvidedBy).To(Equal(int64(3)))

			feedback, err := service.GetFeedback(iv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(feedback).To(HaveLen(1))
			Expect(feedback[0].Recommendation).To(Equal(interview.RecommendYes))
		})

		It("should reject a rating outside 1-5", func() {
			iv := schedule(time.Now().Add(time.Hour))

			_, err := service.SubmitFeedback(interview.CreateFeedbackDTO{
				InterviewID:    iv.ID,
				Rating:         6,
				Recommendation: interview.RecommendYes,
			}, 3)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown recommendation", func() {
			iv := schedule(time.Now().Add(time.Hour))

			_, err := service.SubmitFeedback(interview.CreateFeedbackDTO{
				InterviewID:    iv.ID,
				Rating:         3,
				Recommendation: "undecided",
			}, 3)
			Expect(err).To(HaveOccurred())
		})

		It("should reject feedback for an unknown interview", func() {
			_, err := service.SubmitFeedback(interview.CreateFeedbackDTO{
				InterviewID:    9999,
				Rating:         3,
				Recommendation: interview.RecommendMaybe,
			}, 3)
			Expect(err).To(MatchError(internal.ErrInterviewNotFound))
		})
	})
})
