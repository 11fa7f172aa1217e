// Package catalog supplies the fixed, ordered list of courses shown on screen.
package catalog

import "github.com/akyairhashvil/coursecards/internal/models"

// Supplier exposes the catalog. Implementations must be pure.
//
//go:generate mockgen -source=catalog.go -destination=../tui/mock_supplier_test.go -package=tui
type Supplier interface {
	Courses() []models.Course
}

// Static serves a catalog fixed at construction.
type Static struct {
	courses []models.Course
}

// NewStatic copies courses so later changes to the argument are not observed.
func NewStatic(courses []models.Course) Static {
	return Static{courses: append([]models.Course(nil), courses...)}
}

// Courses returns a fresh copy of the catalog in order.
func (s Static) Courses() []models.Course {
	return append([]models.Course(nil), s.courses...)
}

// Len reports the number of courses.
func (s Static) Len() int { return len(s.courses) }

var _ Supplier = Static{}

// Default returns the compiled-in catalog.
func Default() Static {
	return NewStatic(sampleCourses)
}

var sampleCourses = []models.Course{
	{
		Title:         "Mobile Application Development",
		Code:          "CS401",
		CreditHours:   3,
		Description:   "This course focuses on building modern mobile applications using Android and Kotlin. Topics include user interface design with Jetpack Compose, activity lifecycle, data storage, and network communication. Students will develop fully functional apps and deploy them to emulators or physical devices.",
		Prerequisites: "CS301",
	},
	{
		Title:         "Data Structures and Algorithms",
		Code:          "CS202",
		CreditHours:   4,
		Description:   "This course introduces core data structures such as arrays, linked lists, stacks, queues, trees, heaps, and graphs. Students learn algorithmic techniques including recursion, searching, and sorting, as well as how to evaluate algorithm efficiency using Big O notation.",
		Prerequisites: "CS101",
	},
	{
		Title:         "Operating Systems",
		Code:          "CS303",
		CreditHours:   3,
		Description:   "Covers the fundamental concepts of operating systems, including process management, memory management, file systems, synchronization, and system calls. Students explore Linux as a case study and practice shell scripting and process scheduling in labs.",
		Prerequisites: "CS202",
	},
	{
		Title:         "Artificial Intelligence",
		Code:          "CS404",
		CreditHours:   3,
		Description:   "Introduces the concepts and techniques of artificial intelligence. Topics include intelligent agents, search algorithms, knowledge representation, reasoning, machine learning, and natural language processing. Students will implement basic AI models and algorithms in projects.",
		Prerequisites: "CS303",
	},
	{
		Title:         "Computer Graphics and Visualization",
		Code:          "CS507",
		CreditHours:   2,
		Description:   "Focuses on the fundamentals of computer graphics including 2D/3D transformations, rendering pipelines, modeling, and animation. Students will use OpenGL or WebGL to develop simple visual applications such as drawing engines, simulations, and basic games.",
		Prerequisites: "CS150",
	},
}
