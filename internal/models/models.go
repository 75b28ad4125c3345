package models

import "time"

type Pitcher struct {
	ID         int64
	Name       string
	Handedness *Hand // nullable for rows that predate the column
	CreatedAt  time.Time
}

// Pitch is one charted pitch. Optional fields are pointers; nil means the
// operator left the field unset and the column is stored as NULL.
type Pitch struct {
	ID         int64
	Pitcher    string
	Date       time.Time
	PitchType  PitchType
	Velocity   *int
	Inning     *int
	Swing      bool
	GroundBall bool
	RISP       bool
	Result     *Result
	BatterHand *Hand
	Location   *Zone
}

type Hand string

const (
	HandLeft  Hand = "L"
	HandRight Hand = "R"
)

func (h Hand) Valid() bool {
	return h == HandLeft || h == HandRight
}

type PitchType string

const (
	PitchFourSeam  PitchType = "FF"
	PitchTwoSeam   PitchType = "FT"
	PitchChangeup  PitchType = "CH"
	PitchCurveball PitchType = "CU"
	PitchSlider    PitchType = "SL"
	PitchSplitter  PitchType = "SP"
)

// PitchTypes lists the selectable pitch types in picker order.
var PitchTypes = []PitchType{
	PitchFourSeam,
	PitchTwoSeam,
	PitchChangeup,
	PitchCurveball,
	PitchSlider,
	PitchSplitter,
}

func (p PitchType) Valid() bool {
	for _, t := range PitchTypes {
		if p == t {
			return true
		}
	}
	return false
}

type Result string

const (
	ResultBall           Result = "Ball"
	ResultStrike         Result = "Strike"
	ResultFoulBall       Result = "Foul Ball"
	ResultStrikeout      Result = "Strikeout"
	ResultWalk           Result = "Walk"
	ResultOut            Result = "Out"
	ResultSingle         Result = "1B"
	ResultDouble         Result = "2B"
	ResultTriple         Result = "3B"
	ResultHomeRun        Result = "HR"
	ResultReachOnError   Result = "Reach On Error"
	ResultHitByPitch     Result = "HBP"
	ResultFieldersChoice Result = "Fielder's Choice"
)

var Results = []Result{
	ResultBall,
	ResultStrike,
	ResultFoulBall,
	ResultStrikeout,
	ResultWalk,
	ResultOut,
	ResultSingle,
	ResultDouble,
	ResultTriple,
	ResultHomeRun,
	ResultReachOnError,
	ResultHitByPitch,
	ResultFieldersChoice,
}

func (r Result) Valid() bool {
	for _, v := range Results {
		if r == v {
			return true
		}
	}
	return false
}

// Zone is one of the nine strike-zone subregions, vertical third crossed
// with horizontal third.
type Zone string

const (
	ZoneUpperLeft   Zone = "ULeft"
	ZoneUpperMiddle Zone = "UMiddle"
	ZoneUpperRight  Zone = "URight"
	ZoneMidLeft     Zone = "MLeft"
	ZoneMidMiddle   Zone = "MMiddle"
	ZoneMidRight    Zone = "MRight"
	ZoneLowerLeft   Zone = "LLeft"
	ZoneLowerMiddle Zone = "LMiddle"
	ZoneLowerRight  Zone = "LRight"
)

var Zones = []Zone{
	ZoneUpperLeft,
	ZoneUpperMiddle,
	ZoneUpperRight,
	ZoneMidLeft,
	ZoneMidMiddle,
	ZoneMidRight,
	ZoneLowerLeft,
	ZoneLowerMiddle,
	ZoneLowerRight,
}

func (z Zone) Valid() bool {
	for _, v := range Zones {
		if z == v {
			return true
		}
	}
	return false
}

// MaxVelocity bounds the velocity input; values outside (0, MaxVelocity]
// are treated as unset.
const MaxVelocity = 120

// MaxInning bounds the inning picker.
const MaxInning = 9

// DateLayout is the storage and display format for game dates.
const DateLayout = "2006-01-02"
