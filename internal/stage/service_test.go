package stage_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/stage"
)

func TestStageService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stage Service Suite")
}

var _ = Describe("StageService", func() {
	var service *stage.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = stage.NewService(stage.NewMemoryRepository(), logger)
	})

	Describe("CreateStage", func() {
		It("should create a stage", func() {
			st, err := service.CreateStage(stage.CreateStageDTO{Name: "Applied", Order: 1, IsDefault: true})

			Expect(err).NotTo(HaveOccurred())
			Expect(st.ID).NotTo(BeZero())
			Expect(st.Name).To(Equal("Applied"))
			Expect(st.IsDefault).To(BeTrue())
		})

		It("should require a name", func() {
			_, err := service.CreateStage(stage.CreateStageDTO{Order: 1})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListStages", func() {
		It("should return stages in pipeline order", func() {
			_, err := service.CreateStage(stage.CreateStageDTO{Name: "Interview", Order: 3})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreateStage(stage.CreateStageDTO{Name: "Applied", Order: 1, IsDefault: true})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreateStage(stage.CreateStageDTO{Name: "Screening", Order: 2})
			Expect(err).NotTo(HaveOccurred())

			stages, err := service.ListStages()
			Expect(err).NotTo(HaveOccurred())
			Expect(stages).To(HaveLen(3))
			Expect(stages[0].Name).To(Equal("Applied"))
			Expect(stages[1].Name).To(Equal("Screening"))
			Expect(stages[2].Name).To(Equal("Interview"))
		})
	})

	Describe("DefaultStage", func() {
		It("should return the stage flagged as default", func() {
			_, err := service.CreateStage(stage.CreateStageDTO{Name: "Screening", Order: 2})
			Expect(err).NotTo(HaveOccurred())
			applied, err := service.CreateStage(stage.CreateStageDTO{Name: "Applied", Order: 1, IsDefault: true})
			Expect(err).NotTo(HaveOccurred())

			def, err := service.DefaultStage()
			Expect(err).NotTo(HaveOccurred())
			Expect(def.ID).To(Equal(applied.ID))
		})

		It("should error when no default exists", func() {
			_, err := service.CreateStage(stage.CreateStageDTO{Name: "Screening", Order: 2})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.DefaultStage()
			Expect(err).To(MatchError(internal.ErrStageNotFound))
		})
	})

	Describe("GetStage", func() {
		It("should return not found for an unknown id", func() {
			_, err := service.GetStage(42)
			Expect(err).To(MatchError(internal.ErrStageNotFound))
		})
	})
})
