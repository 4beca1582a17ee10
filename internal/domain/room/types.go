package room

// Type classifies what kind of space a room is.
type Type string

const (
	TypeClassroom   Type = "classroom"
	TypeLab         Type = "lab"
	TypeLectureHall Type = "lecture_hall"
	TypeStudyRoom   Type = "study_room"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeClassroom, TypeLab, TypeLectureHall, TypeStudyRoom:
		return true
	}
	return false
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}
