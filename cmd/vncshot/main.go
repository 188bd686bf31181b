// Command vncshot connects to a VNC server, captures one screenshot,
// and writes it to a PNG file.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/regulad/pyvnc"
)

var (
	addr     = flag.String("addr", "localhost:5900", "host:port of the VNC server")
	password = flag.String("password", "", "VNC password, if the server requires one")
	out      = flag.String("out", "screenshot.png", "PNG file to write")
	format   = flag.String("format", "rgba", "pixel format: rgba, bgra, argb, or abgr")
	timeout  = flag.Duration("timeout", 5*time.Second, "connection timeout")
)

func main() {
	flag.Parse()

	host, port, err := splitHostPort(*addr)
	if err != nil {
		log.Fatalf("invalid -addr: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sess, err := pyvnc.Connect(ctx, pyvnc.SessionConfig{
		Host:        host,
		Port:        port,
		Password:    *password,
		PixelFormat: *format,
		Timeout:     *timeout,
		Logger:      log.Default(),
	})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer sess.Close()

	shot, err := sess.Capture(nil, false)
	if err != nil {
		log.Fatalf("capture: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := png.Encode(f, shot.Image()); err != nil {
		log.Fatalf("encode PNG: %v", err)
	}
	log.Printf("wrote %s", *out)
}

func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
