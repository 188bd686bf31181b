// Package pyvnc implements an RFB 3.8 VNC client: connecting, taking
// screenshots, and sending keyboard and mouse input.
//
// Quick start:
//
//	ctx := context.Background()
//	sess, err := pyvnc.Connect(ctx, pyvnc.SessionConfig{
//		Host:     "localhost",
//		Port:     5900,
//		Password: "your_password",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sess.Close()
//
//	shot, err := sess.Capture(nil, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	f, _ := os.Create("screenshot.png")
//	png.Encode(f, shot.Image())
//
//	sess.Move(pyvnc.Point{X: 100, Y: 200}, false)
//	sess.Click(pyvnc.MouseButtonLeft)
//
//	sess.Write("Hello VNC!")
//	sess.Press("Return")
//
//	release, _ := sess.HoldKey("Control_L")
//	sess.Press("c")
//	release()
//
//	releaseDrag, _ := sess.HoldMouse(pyvnc.MouseButtonLeft)
//	sess.Move(pyvnc.Point{X: 500, Y: 600}, false)
//	releaseDrag()
package pyvnc
