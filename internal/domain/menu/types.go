package menu

type CourseType string

const (
	CourseStarter CourseType = "STARTER"
	CourseMain    CourseType = "MAIN"
	CourseDessert CourseType = "DESSERT"
)

func (c CourseType) String() string {
	return string(c)
}

func (c CourseType) IsValid() bool {
	switch c {
	case CourseStarter, CourseMain, CourseDessert:
		return true
	default:
		return false
	}
}

// Rank orders courses the way they are served.
func (c CourseType) Rank() int {
	switch c {
	case CourseStarter:
		return 0
	case CourseMain:
		return 1
	case CourseDessert:
		return 2
	default:
		return 3
	}
}

func NewCourseType(s string) (CourseType, error) {
	c := CourseType(s)
	if !c.IsValid() {
		return "", ErrInvalidCourseType
	}
	return c, nil
}
