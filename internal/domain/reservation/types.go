package reservation

type Status string

// StatusConfirmed is the only status the booking engine produces;
// other terminal states exist only as persisted history.
const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}
