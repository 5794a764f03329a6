package tcx_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/muktihari/tcx"
)

func ptr[T any](v T) *T { return &v }

func openTestdata(t *testing.T, filename string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadActivity(t *testing.T) {
	db, err := tcx.Read(openTestdata(t, "activity.tcx"))
	if err != nil {
		t.Fatal(err)
	}

	want := tcx.TrainingCenterDatabase{
		Activities: &tcx.ActivityList{
			Activities: []tcx.Activity{{
				ID:    time.Date(2020, 12, 28, 15, 36, 16, 0, time.UTC),
				Sport: tcx.SportRunning,
				Notes: ptr("Evening run"),
				Training: &tcx.Training{
					Plan: &tcx.Plan{
						Name:            ptr("Intervals"),
						TrainingType:    tcx.TrainingWorkout,
						IntervalWorkout: true,
					},
				},
				Creator: &tcx.Device{
					Name:      "Polar Vantage V",
					UnitID:    0,
					ProductID: 203,
					Version: tcx.Version{
						VersionMajor: 5,
						VersionMinor: 1,
						BuildMajor:   ptr(uint16(0)),
						BuildMinor:   ptr(uint16(0)),
					},
				},
				Laps: []tcx.ActivityLap{{
					StartTime:           time.Date(2020, 12, 28, 15, 36, 16, 0, time.UTC),
					TotalTimeSeconds:    1286.2,
					DistanceMeters:      4137.0,
					MaximumSpeed:        ptr(4.1),
					Calories:            385,
					AverageHeartRateBpm: ptr(uint8(127)),
					MaximumHeartRateBpm: ptr(uint8(160)),
					Intensity:           tcx.IntensityActive,
					TriggerMethod:       tcx.TriggerManual,
					Notes:               ptr("warm up"),
					Extension: &tcx.LapExtension{
						AvgSpeed:      ptr(3.21),
						AvgRunCadence: ptr(uint8(78)),
						MaxRunCadence: ptr(uint8(92)),
						Steps:         ptr(uint16(4091)),
						AvgWatts:      ptr(uint16(205)),
						MaxWatts:      ptr(uint16(341)),
					},
					TrackPoints: []tcx.TrackPoint{
						{
							Time: time.Date(2020, 12, 28, 15, 36, 17, 0, time.UTC),
							Position: &tcx.Position{
								LatitudeDegrees:  60.168505,
								LongitudeDegrees: 24.931525,
							},
							AltitudeMeters: ptr(11.6),
							DistanceMeters: ptr(2.15),
							HeartRateBpm:   ptr(uint8(98)),
							Cadence:        ptr(uint8(77)),
							SensorState:    ptr(tcx.SensorPresent),
							Extension: &tcx.TrackPointExtension{
								Speed:         ptr(2.84),
								RunCadence:    ptr(uint8(77)),
								Watts:         ptr(uint16(212)),
								CadenceSensor: ptr(tcx.CadenceSensorFootpod),
							},
						},
						{
							Time:         time.Date(2020, 12, 28, 15, 36, 18, 0, time.UTC),
							HeartRateBpm: ptr(uint8(99)),
						},
					},
				}},
			}},
		},
		Author: &tcx.Application{
			Name:       "Polar Flow Mobile Viewer Android",
			LangID:     "EN",
			PartNumber: "XXX-XXXXX-XX",
		},
	}

	if diff := cmp.Diff(want, db); diff != "" {
		t.Fatal(diff)
	}
}

func TestReadPlans(t *testing.T) {
	db, err := tcx.Read(openTestdata(t, "plans.tcx"))
	if err != nil {
		t.Fatal(err)
	}

	want := tcx.TrainingCenterDatabase{
		Folders: &tcx.Folders{
			History: &tcx.History{
				Running: &tcx.HistoryFolder{
					Name: ptr("Running"),
					Folders: []tcx.HistoryFolder{{
						Name:         ptr("2020"),
						ActivityRefs: []time.Time{time.Date(2020, 12, 28, 15, 36, 16, 0, time.UTC)},
						Weeks: []tcx.Week{{
							StartDay: ptr(time.Date(2020, 12, 28, 0, 0, 0, 0, time.UTC)),
							Notes:    ptr("Week 53"),
						}},
					}},
					Notes: ptr("All runs"),
				},
				Biking:     &tcx.HistoryFolder{Name: ptr("Biking")},
				Other:      &tcx.HistoryFolder{Name: ptr("Other")},
				MultiSport: &tcx.MultiSportFolder{Name: ptr("MultiSport")},
			},
			Workouts: &tcx.Workouts{
				Running: &tcx.WorkoutFolder{
					Name:            ptr("Running"),
					WorkoutNameRefs: []string{"Morning Intervals"},
				},
			},
			Courses: &tcx.Courses{
				CourseFolder: &tcx.CourseFolder{
					Name:           ptr("Courses"),
					CourseNameRefs: []string{"Loop"},
				},
			},
		},
		Workouts: &tcx.WorkoutList{
			Workouts: []tcx.Workout{{
				Name:        ptr("Morning Intervals"),
				Sport:       ptr(tcx.SportRunning),
				ScheduledOn: ptr(time.Date(2021, 1, 4, 6, 0, 0, 0, time.UTC)),
				Notes:       ptr("Tuesday quality session"),
				Steps: []tcx.WorkoutStep{
					&tcx.Step{
						StepID:    ptr(uint8(1)),
						Name:      ptr("Warm up"),
						Duration:  &tcx.DurationTime{Seconds: 600},
						Intensity: ptr(tcx.IntensityActive),
						Target:    &tcx.NoTarget{},
					},
					&tcx.Repeat{
						StepID:      ptr(uint8(2)),
						Repetitions: ptr(uint8(4)),
						Children: []tcx.WorkoutStep{
							&tcx.Step{
								StepID:    ptr(uint8(3)),
								Name:      ptr("Fast"),
								Duration:  &tcx.DurationDistance{Meters: 400},
								Intensity: ptr(tcx.IntensityActive),
								Target: &tcx.HeartRateTarget{
									Zone: &tcx.PredefinedHeartRateZone{Number: 4},
								},
							},
							&tcx.Step{
								StepID:    ptr(uint8(4)),
								Name:      ptr("Rest"),
								Duration:  &tcx.HeartRateBelow{HeartRate: 120},
								Intensity: ptr(tcx.IntensityResting),
								Target: &tcx.SpeedTarget{
									Zone: &tcx.CustomSpeedZone{
										ViewAs:                ptr(tcx.SpeedTypePace),
										LowInMetersPerSecond:  ptr(2.5),
										HighInMetersPerSecond: ptr(3.2),
									},
								},
							},
						},
					},
				},
			}},
		},
		Courses: &tcx.CourseList{
			Courses: []tcx.Course{{
				Name: ptr("Loop"),
				Laps: []tcx.CourseLap{{
					TotalTimeSeconds: ptr(1800.0),
					DistanceMeters:   ptr(5000.0),
					BeginPosition:    &tcx.Position{LatitudeDegrees: 60.1, LongitudeDegrees: 24.9},
					EndPosition:      &tcx.Position{LatitudeDegrees: 60.2, LongitudeDegrees: 24.8},
					Intensity:        ptr(tcx.IntensityActive),
					Cadence:          ptr(uint8(80)),
				}},
				TrackPoints: []tcx.TrackPoint{{
					Time:     time.Date(2020, 12, 28, 15, 36, 17, 0, time.UTC),
					Position: &tcx.Position{LatitudeDegrees: 60.1, LongitudeDegrees: 24.9},
				}},
				CoursePoint: &tcx.CoursePoint{
					Name:      ptr("Turn"),
					Time:      ptr(time.Date(2020, 12, 28, 15, 40, 0, 0, time.UTC)),
					Position:  &tcx.Position{LatitudeDegrees: 60.2, LongitudeDegrees: 24.8},
					PointType: ptr(tcx.CoursePointLeft),
				},
			}},
		},
	}

	if diff := cmp.Diff(want, db); diff != "" {
		t.Fatal(diff)
	}
}

func TestReadIdempotent(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "activity.tcx"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := tcx.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	second, err := tcx.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func BenchmarkRead(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "activity.tcx"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tcx.Read(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
