package tcx

// Closed enumerations of the TCX schema. Zero values match the
// schema defaults (Running, Active, Manual, Present, Workout) so a
// document that omits the corresponding element yields the default
// rather than an error.

// Sport is the sport an activity or workout was recorded for.
type Sport uint8

const (
	SportRunning Sport = iota
	SportBiking
	SportOther
)

// ParseSport parses s into a Sport.
func ParseSport(s string) (Sport, error) {
	switch s {
	case "Running":
		return SportRunning, nil
	case "Biking":
		return SportBiking, nil
	case "Other":
		return SportOther, nil
	}
	return 0, &UnknownEnumValueError{Enum: "sport", Value: s}
}

func (s Sport) String() string {
	switch s {
	case SportRunning:
		return "Running"
	case SportBiking:
		return "Biking"
	case SportOther:
		return "Other"
	}
	return "unknown"
}

// Intensity tells whether a lap is an active or a resting one.
type Intensity uint8

const (
	IntensityActive Intensity = iota
	IntensityResting
)

// ParseIntensity parses s into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	switch s {
	case "Active":
		return IntensityActive, nil
	case "Resting":
		return IntensityResting, nil
	}
	return 0, &UnknownEnumValueError{Enum: "intensity", Value: s}
}

func (i Intensity) String() string {
	switch i {
	case IntensityActive:
		return "Active"
	case IntensityResting:
		return "Resting"
	}
	return "unknown"
}

// TriggerMethod is what caused a lap to be recorded.
type TriggerMethod uint8

const (
	TriggerManual TriggerMethod = iota
	TriggerDistance
	TriggerLocation
	TriggerTime
	TriggerHeartRate
)

// ParseTriggerMethod parses s into a TriggerMethod.
func ParseTriggerMethod(s string) (TriggerMethod, error) {
	switch s {
	case "Manual":
		return TriggerManual, nil
	case "Distance":
		return TriggerDistance, nil
	case "Location":
		return TriggerLocation, nil
	case "Time":
		return TriggerTime, nil
	case "HeartRate":
		return TriggerHeartRate, nil
	}
	return 0, &UnknownEnumValueError{Enum: "trigger method", Value: s}
}

func (t TriggerMethod) String() string {
	switch t {
	case TriggerManual:
		return "Manual"
	case TriggerDistance:
		return "Distance"
	case TriggerLocation:
		return "Location"
	case TriggerTime:
		return "Time"
	case TriggerHeartRate:
		return "HeartRate"
	}
	return "unknown"
}

// SensorState tells whether a sensor was connected when a track
// point was recorded.
type SensorState uint8

const (
	SensorPresent SensorState = iota
	SensorAbsent
)

// ParseSensorState parses s into a SensorState.
func ParseSensorState(s string) (SensorState, error) {
	switch s {
	case "Present":
		return SensorPresent, nil
	case "Absent":
		return SensorAbsent, nil
	}
	return 0, &UnknownEnumValueError{Enum: "sensor state", Value: s}
}

func (s SensorState) String() string {
	switch s {
	case SensorPresent:
		return "Present"
	case SensorAbsent:
		return "Absent"
	}
	return "unknown"
}

// BuildType is the release stage of an application build.
type BuildType uint8

const (
	BuildInternal BuildType = iota
	BuildAlpha
	BuildBeta
	BuildRelease
)

// ParseBuildType parses s into a BuildType.
func ParseBuildType(s string) (BuildType, error) {
	switch s {
	case "Internal":
		return BuildInternal, nil
	case "Alpha":
		return BuildAlpha, nil
	case "Beta":
		return BuildBeta, nil
	case "Release":
		return BuildRelease, nil
	}
	return 0, &UnknownEnumValueError{Enum: "build type", Value: s}
}

func (b BuildType) String() string {
	switch b {
	case BuildInternal:
		return "Internal"
	case BuildAlpha:
		return "Alpha"
	case BuildBeta:
		return "Beta"
	case BuildRelease:
		return "Release"
	}
	return "unknown"
}

// TrainingType tells whether a training plan refers to a workout or
// a course.
type TrainingType uint8

const (
	TrainingWorkout TrainingType = iota
	TrainingCourse
)

// ParseTrainingType parses s into a TrainingType.
func ParseTrainingType(s string) (TrainingType, error) {
	switch s {
	case "Workout":
		return TrainingWorkout, nil
	case "Course":
		return TrainingCourse, nil
	}
	return 0, &UnknownEnumValueError{Enum: "training type", Value: s}
}

func (t TrainingType) String() string {
	switch t {
	case TrainingWorkout:
		return "Workout"
	case TrainingCourse:
		return "Course"
	}
	return "unknown"
}

// CadenceSensorType is the kind of cadence sensor that produced a
// track-point extension reading.
type CadenceSensorType uint8

const (
	CadenceSensorFootpod CadenceSensorType = iota
	CadenceSensorBike
)

// ParseCadenceSensorType parses s into a CadenceSensorType.
func ParseCadenceSensorType(s string) (CadenceSensorType, error) {
	switch s {
	case "Footpod":
		return CadenceSensorFootpod, nil
	case "Bike":
		return CadenceSensorBike, nil
	}
	return 0, &UnknownEnumValueError{Enum: "cadence sensor type", Value: s}
}

func (c CadenceSensorType) String() string {
	switch c {
	case CadenceSensorFootpod:
		return "Footpod"
	case CadenceSensorBike:
		return "Bike"
	}
	return "unknown"
}

// CoursePointType is the kind of landmark a course point marks.
type CoursePointType uint8

const (
	CoursePointGeneric CoursePointType = iota
	CoursePointSummit
	CoursePointValley
	CoursePointWater
	CoursePointFood
	CoursePointDanger
	CoursePointLeft
	CoursePointRight
	CoursePointStraight
	CoursePointFirstAid
	CoursePointCategory4
	CoursePointCategory3
	CoursePointCategory2
	CoursePointCategory1
	CoursePointHorsCategory
	CoursePointSprint
)

// ParseCoursePointType parses s into a CoursePointType. The literals
// follow the TCX schema, some of which contain spaces.
func ParseCoursePointType(s string) (CoursePointType, error) {
	switch s {
	case "Generic":
		return CoursePointGeneric, nil
	case "Summit":
		return CoursePointSummit, nil
	case "Valley":
		return CoursePointValley, nil
	case "Water":
		return CoursePointWater, nil
	case "Food":
		return CoursePointFood, nil
	case "Danger":
		return CoursePointDanger, nil
	case "Left":
		return CoursePointLeft, nil
	case "Right":
		return CoursePointRight, nil
	case "Straight":
		return CoursePointStraight, nil
	case "First Aid":
		return CoursePointFirstAid, nil
	case "4th Category":
		return CoursePointCategory4, nil
	case "3rd Category":
		return CoursePointCategory3, nil
	case "2nd Category":
		return CoursePointCategory2, nil
	case "1st Category":
		return CoursePointCategory1, nil
	case "Hors Category":
		return CoursePointHorsCategory, nil
	case "Sprint":
		return CoursePointSprint, nil
	}
	return 0, &UnknownEnumValueError{Enum: "course point type", Value: s}
}

func (c CoursePointType) String() string {
	switch c {
	case CoursePointGeneric:
		return "Generic"
	case CoursePointSummit:
		return "Summit"
	case CoursePointValley:
		return "Valley"
	case CoursePointWater:
		return "Water"
	case CoursePointFood:
		return "Food"
	case CoursePointDanger:
		return "Danger"
	case CoursePointLeft:
		return "Left"
	case CoursePointRight:
		return "Right"
	case CoursePointStraight:
		return "Straight"
	case CoursePointFirstAid:
		return "First Aid"
	case CoursePointCategory4:
		return "4th Category"
	case CoursePointCategory3:
		return "3rd Category"
	case CoursePointCategory2:
		return "2nd Category"
	case CoursePointCategory1:
		return "1st Category"
	case CoursePointHorsCategory:
		return "Hors Category"
	case CoursePointSprint:
		return "Sprint"
	}
	return "unknown"
}

// SpeedType tells how a custom speed zone is displayed.
type SpeedType uint8

const (
	SpeedTypePace SpeedType = iota
	SpeedTypeSpeed
)

// ParseSpeedType parses s into a SpeedType.
func ParseSpeedType(s string) (SpeedType, error) {
	switch s {
	case "Pace":
		return SpeedTypePace, nil
	case "Speed":
		return SpeedTypeSpeed, nil
	}
	return 0, &UnknownEnumValueError{Enum: "speed type", Value: s}
}

func (s SpeedType) String() string {
	switch s {
	case SpeedTypePace:
		return "Pace"
	case SpeedTypeSpeed:
		return "Speed"
	}
	return "unknown"
}
