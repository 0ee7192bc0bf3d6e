// Command nqueens-tui watches a solver run live: the current best placement
// is redrawn as the generations tick by, and a short tone plays when a
// solution lands.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/nqueens/progress"
	"github.com/lixenwraith/nqueens/solver"
)

const (
	pollInterval = 50 * time.Millisecond
	chimeFreq    = 880
	chimeLength  = 150 * time.Millisecond
)

func main() {
	n := flag.Int("n", 8, "board size")
	algorithm := flag.String("algorithm", solver.AlgorithmElitist, "Genetic or Tournament")
	seed := flag.Uint64("seed", 0, "master seed (0 = random)")
	mute := flag.Bool("mute", false, "disable the completion chime")
	flag.Parse()

	tracker := progress.NewTracker()
	s, err := solver.New(*algorithm, solver.Options{
		Seed:          *seed,
		Tracker:       tracker,
		GreedySeeding: *algorithm == solver.AlgorithmElitist,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	audioReady := false
	if !*mute {
		sampleRate := beep.SampleRate(44100)
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
			audioReady = true
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan *solver.RunResult, 1)
	go func() {
		result, _ := s.Solve(ctx, *n)
		done <- result
	}()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var result *solver.RunResult
	chimed := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					finish(screen, audioReady, result)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case r := <-done:
			result = r
			if result != nil && result.Solved() && audioReady && !chimed {
				playChime()
				chimed = true
			}
		case <-ticker.C:
			draw(screen, tracker, *n, *algorithm, result)
		}
	}
}

func finish(screen tcell.Screen, audioReady bool, result *solver.RunResult) {
	screen.Fini()
	if audioReady {
		speaker.Close()
	}
	if result != nil {
		fmt.Println(result.Summary())
	}
}

func playChime() {
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(chimeLength), sine))
}

func draw(screen tcell.Screen, tracker *progress.Tracker, n int, algorithm string, result *solver.RunResult) {
	screen.Clear()

	header := fmt.Sprintf("N-Queens %s  N=%d", algorithm, n)
	putString(screen, 0, 0, tcell.StyleDefault.Bold(true), header)

	snap := tracker.Best()
	stats := fmt.Sprintf("generation %d  best conflicts %d  stagnation %d  mutation %.3f",
		tracker.Generation(), tracker.BestConflicts(), tracker.Stagnation(), tracker.MutationRate())
	putString(screen, 0, 1, tcell.StyleDefault, stats)

	if snap != nil {
		drawBoard(screen, 3, snap)
	}

	if result != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		msg := "SOLVED"
		if !result.Solved() {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
			msg = fmt.Sprintf("STOPPED with %d conflicts", result.Conflicts)
		}
		putString(screen, 0, n+4, style, msg+"  (q to quit)")
	}

	screen.Show()
}

func drawBoard(screen tcell.Screen, top int, snap *progress.Snapshot) {
	queen := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	empty := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for row, col := range snap.State {
		for c := 0; c < len(snap.State); c++ {
			ch := '·'
			style := empty
			if c == col {
				ch = 'Q'
				style = queen
			}
			screen.SetContent(c*2, top+row, ch, nil, style)
		}
	}
}

func putString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
