package testutil

import "github.com/akyairhashvil/coursecards/internal/models"

// CourseBuilder provides fluent API for creating test courses.
type CourseBuilder struct {
	course models.Course
}

func NewCourse() *CourseBuilder {
	return &CourseBuilder{
		course: models.Course{
			Title:         "Test Course",
			Code:          "CS000",
			CreditHours:   3,
			Description:   "Test description.",
			Prerequisites: "None",
		},
	}
}

func (b *CourseBuilder) WithTitle(t string) *CourseBuilder {
	b.course.Title = t
	return b
}

func (b *CourseBuilder) WithCode(c string) *CourseBuilder {
	b.course.Code = c
	return b
}

func (b *CourseBuilder) WithCredits(n int) *CourseBuilder {
	b.course.CreditHours = n
	return b
}

func (b *CourseBuilder) WithDescription(d string) *CourseBuilder {
	b.course.Description = d
	return b
}

func (b *CourseBuilder) WithPrerequisites(p string) *CourseBuilder {
	b.course.Prerequisites = p
	return b
}

func (b *CourseBuilder) Build() models.Course {
	return b.course
}

// TwoCourseCatalog is the CS401/CS202 catalog used across screen tests.
func TwoCourseCatalog() []models.Course {
	return []models.Course{
		NewCourse().
			WithTitle("Mobile Application Development").
			WithCode("CS401").
			WithCredits(3).
			WithDescription("Build mobile apps.").
			WithPrerequisites("CS301").
			Build(),
		NewCourse().
			WithTitle("Data Structures and Algorithms").
			WithCode("CS202").
			WithCredits(4).
			WithDescription("Core data structures.").
			WithPrerequisites("CS101").
			Build(),
	}
}
