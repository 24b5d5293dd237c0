package value_objects

import "fmt"

type Status string

const (
	StatusInstalled   Status = "installed"
	StatusUninstalled Status = "uninstalled"
)

var validStatuses = map[Status]bool{
	StatusInstalled:   true,
	StatusUninstalled: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func ParseStatus(str string) (Status, error) {
	s := Status(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid installation status: %s", str)
	}
	return s, nil
}
