package tcx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/muktihari/tcx"
)

func TestParseSport(t *testing.T) {
	assertEnum(t, "sport", tcx.ParseSport, map[string]tcx.Sport{
		"Running": tcx.SportRunning,
		"Biking":  tcx.SportBiking,
		"Other":   tcx.SportOther,
	})
}

func TestParseIntensity(t *testing.T) {
	assertEnum(t, "intensity", tcx.ParseIntensity, map[string]tcx.Intensity{
		"Active":  tcx.IntensityActive,
		"Resting": tcx.IntensityResting,
	})
}

func TestParseTriggerMethod(t *testing.T) {
	assertEnum(t, "trigger method", tcx.ParseTriggerMethod, map[string]tcx.TriggerMethod{
		"Manual":    tcx.TriggerManual,
		"Distance":  tcx.TriggerDistance,
		"Location":  tcx.TriggerLocation,
		"Time":      tcx.TriggerTime,
		"HeartRate": tcx.TriggerHeartRate,
	})
}

func TestParseSensorState(t *testing.T) {
	assertEnum(t, "sensor state", tcx.ParseSensorState, map[string]tcx.SensorState{
		"Present": tcx.SensorPresent,
		"Absent":  tcx.SensorAbsent,
	})
}

func TestParseBuildType(t *testing.T) {
	assertEnum(t, "build type", tcx.ParseBuildType, map[string]tcx.BuildType{
		"Internal": tcx.BuildInternal,
		"Alpha":    tcx.BuildAlpha,
		"Beta":     tcx.BuildBeta,
		"Release":  tcx.BuildRelease,
	})
}

func TestParseTrainingType(t *testing.T) {
	assertEnum(t, "training type", tcx.ParseTrainingType, map[string]tcx.TrainingType{
		"Workout": tcx.TrainingWorkout,
		"Course":  tcx.TrainingCourse,
	})
}

func TestParseCadenceSensorType(t *testing.T) {
	assertEnum(t, "cadence sensor type", tcx.ParseCadenceSensorType, map[string]tcx.CadenceSensorType{
		"Footpod": tcx.CadenceSensorFootpod,
		"Bike":    tcx.CadenceSensorBike,
	})
}

func TestParseCoursePointType(t *testing.T) {
	assertEnum(t, "course point type", tcx.ParseCoursePointType, map[string]tcx.CoursePointType{
		"Generic":       tcx.CoursePointGeneric,
		"Summit":        tcx.CoursePointSummit,
		"Valley":        tcx.CoursePointValley,
		"Water":         tcx.CoursePointWater,
		"Food":          tcx.CoursePointFood,
		"Danger":        tcx.CoursePointDanger,
		"Left":          tcx.CoursePointLeft,
		"Right":         tcx.CoursePointRight,
		"Straight":      tcx.CoursePointStraight,
		"First Aid":     tcx.CoursePointFirstAid,
		"4th Category":  tcx.CoursePointCategory4,
		"3rd Category":  tcx.CoursePointCategory3,
		"2nd Category":  tcx.CoursePointCategory2,
		"1st Category":  tcx.CoursePointCategory1,
		"Hors Category": tcx.CoursePointHorsCategory,
		"Sprint":        tcx.CoursePointSprint,
	})
}

func TestParseSpeedType(t *testing.T) {
	assertEnum(t, "speed type", tcx.ParseSpeedType, map[string]tcx.SpeedType{
		"Pace":  tcx.SpeedTypePace,
		"Speed": tcx.SpeedTypeSpeed,
	})
}

// assertEnum checks that every known literal parses to its variant
// and round-trips through String, and that anything outside the set
// fails with an UnknownEnumValueError naming the enum.
func assertEnum[E interface {
	comparable
	fmt.Stringer
}](t *testing.T, enum string, parse func(string) (E, error), literals map[string]E) {
	t.Helper()

	for literal, want := range literals {
		got, err := parse(literal)
		if err != nil {
			t.Fatalf("parse %q: %v", literal, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got: %v", literal, want, got)
		}
		if s := got.String(); s != literal {
			t.Fatalf("%v: expected literal %q, got: %q", got, literal, s)
		}
	}

	for _, invalid := range []string{"", "bogus", "running"} {
		if _, ok := literals[invalid]; ok {
			continue
		}
		_, err := parse(invalid)
		var uerr *tcx.UnknownEnumValueError
		if !errors.As(err, &uerr) {
			t.Fatalf("parse %q: expected *UnknownEnumValueError, got: %v", invalid, err)
		}
		if uerr.Enum != enum {
			t.Fatalf("parse %q: expected enum %q in error, got: %q", invalid, enum, uerr.Enum)
		}
		if uerr.Value != invalid {
			t.Fatalf("parse %q: expected offending text in error, got: %q", invalid, uerr.Value)
		}
	}
}
