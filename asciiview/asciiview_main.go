// Command asciiview is a terminal preview of isoworld: it sizes the
// renderer to the current terminal dimensions via golang.org/x/term, puts
// stdin in raw mode to read arrow-key panning one byte at a time (the same
// raw-mode-plus-manual-escape-decoding approach IntuitionEngine's
// terminal_host.go uses for its own stdin reader), and repaints the canvas
// as a grid of ANSI truecolor half-block glyphs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/quevivasbien/isometric-world"
	"github.com/quevivasbien/isometric-world/config"
)

const panStep = int32(4)

func main() {
	configPath := flag.String("config", "", "path to a TOML world config (defaults built in if omitted)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "asciiview: %v\n", err)
			os.Exit(1)
		}
	}

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil {
		cfg.PixelWidth = cols
		// Each terminal row shows two rendered pixel rows (half-block glyphs).
		cfg.PixelHeight = rows * 2
	}

	st, err := isoworld.New(cfg.Periods, cfg.Amplitudes, cfg.PixelHeight, cfg.PixelWidth, cfg.Scale, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asciiview: %v\n", err)
		os.Exit(1)
	}
	st.Draw()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asciiview: failed to set raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		term.Restore(fd, oldState)
		os.Exit(0)
	}()

	render(st, cfg.PixelWidth, cfg.PixelHeight)

	in := bufio.NewReader(os.Stdin)
	buf := make([]byte, 3)
	for {
		n, err := in.Read(buf[:1])
		if err != nil || n == 0 {
			continue
		}
		if buf[0] == 'q' {
			return
		}
		if buf[0] != 0x1B {
			continue
		}
		if _, err := in.Read(buf[1:3]); err != nil {
			continue
		}
		if buf[1] != '[' {
			continue
		}
		switch buf[2] {
		case 'A':
			st.ShiftY(-panStep)
		case 'B':
			st.ShiftY(panStep)
		case 'C':
			st.ShiftX(panStep)
		case 'D':
			st.ShiftX(-panStep)
		default:
			continue
		}
		render(st, cfg.PixelWidth, cfg.PixelHeight)
	}
}

// render draws the canvas as two pixel rows per terminal row, using the
// unicode upper-half-block glyph with distinct truecolor foreground
// (top pixel) and background (bottom pixel) escapes.
func render(st *isoworld.State, width, height int) {
	canvas := st.GetCanvas()
	var out []byte
	out = append(out, "\x1b[H"...)
	for y := 0; y+1 < height; y += 2 {
		for x := 0; x < width; x++ {
			top := pixelAt(canvas, width, x, y)
			bottom := pixelAt(canvas, width, x, y+1)
			out = append(out, fmt.Sprintf(
				"\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top[0], top[1], top[2], bottom[0], bottom[1], bottom[2])...)
		}
		out = append(out, "\x1b[0m\r\n"...)
	}
	os.Stdout.Write(out)
}

func pixelAt(canvas []byte, width, x, y int) [3]byte {
	i := (y*width + x) * 4
	if i+2 >= len(canvas) {
		return [3]byte{}
	}
	return [3]byte{canvas[i], canvas[i+1], canvas[i+2]}
}
