package version

import (
	"fmt"
	"time"
)

// Заполняются линкером через -ldflags "-X ...".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Build ID - число дней от начала проекта до даты сборки.
var buildEpoch = time.Date(
	2024, time.March, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo - метаданные сборки в структурном виде.
type VersionInfo struct {
	BuildID   int    `json:"buildId"`
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	Error     string `json:"error,omitempty"`
}

// BuildID вычисляет номер сборки из BuildDate.
func BuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Часы вместо суток напрямую: обе даты в UTC, DST не мешает.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info возвращает метаданные сборки. Безопасно звать в любой момент.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    orUnknown(BuildCommit),
		Branch:    orUnknown(BuildBranch),
	}

	id, err := BuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

// String - человекочитаемая строка для стартового лога.
func String() string {
	info := Info()
	if info.Error != "" {
		return fmt.Sprintf("rogue-server dev build (%s)", info.Error)
	}
	return fmt.Sprintf("rogue-server build %d (%s) commit[%s] branch[%s]",
		info.BuildID, info.BuildDate, info.Commit, info.Branch)
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
