// Package control owns the interactive state of the visual lab.
//
// A [Controller] holds the selected [conic.Topic] and the shape parameters
// and keeps a sampled [conic.Curve] and rendered [viz.Scene] in step with
// them:
//
//   - [Controller.Set] and [Controller.Nudge] clamp into the slider ranges
//   - [Controller.SetTopic] keeps the parameters of every topic
//   - [Controller.ApplyPreset] loads stored slider values
//
// Recomputation is synchronous; there is nothing to wait on.
//
// # Usage
//
//	ctl, _ := control.NewLab(conic.TopicEllipse, conic.DefaultParams())
//	ctl.Set(conic.ParamSemiMajor, 5)
//	ctl.Set(conic.ParamSemiMinor, 3)
//	fmt.Println(ctl.EccentricityLabel()) // e = 0.80
package control
