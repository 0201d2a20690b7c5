// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/config"
	"cogentcore.org/viewplot/data"
	"cogentcore.org/viewplot/plotwidget"
	"cogentcore.org/viewplot/views/density"
	"cogentcore.org/viewplot/views/scatter"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// ErrWatchStdin is returned for --watch with input from stdin.
var ErrWatchStdin = errors.New("viewplot: cannot watch stdin")

// app holds the flags and state shared by all commands.
type app struct {
	term *termenv.Output
	opts *config.Options

	configFile string
	out        string
	watch      bool
	width      int
	height     int
	colorMap   string
	rate       float64

	verbose, debug, quiet bool
}

func newApp(term *termenv.Output) *app {
	return &app{term: term, opts: config.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "viewplot",
		Short:         "Render numeric text files as plots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.debug, a.verbose, a.quiet)
			logx.SetDefaultLogger()
			return a.loadOptions(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "options file (.toml or .yaml)")
	pf.StringVarP(&a.out, "out", "o", "plot.png", "output PNG file")
	pf.BoolVarP(&a.watch, "watch", "w", false, "re-render whenever the input file changes")
	pf.IntVar(&a.width, "width", 0, "image width in pixels")
	pf.IntVar(&a.height, "height", 0, "image height in pixels")
	pf.StringVar(&a.colorMap, "colormap", "", "color map for density plots")
	pf.Float64Var(&a.rate, "rate", 0, "maximum re-renders per second while watching")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log more")
	pf.BoolVar(&a.debug, "debug", false, "log everything")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")
	root.AddCommand(a.densityCmd(), a.scatterCmd(), a.configCmd())
	return root
}

// loadOptions reads the options file, if any, and applies the flags
// the user set on top of it.
func (a *app) loadOptions(cmd *cobra.Command) error {
	if a.configFile != "" {
		o, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.opts = o
	}
	fl := cmd.Flags()
	if fl.Changed("width") {
		a.opts.Width = a.width
	}
	if fl.Changed("height") {
		a.opts.Height = a.height
	}
	if fl.Changed("colormap") {
		a.opts.ColorMap = a.colorMap
	}
	if fl.Changed("rate") {
		a.opts.MaxFrameRate = a.rate
	}
	return a.opts.Validate()
}

func (a *app) densityCmd() *cobra.Command {
	var (
		geometry  []float64
		symmetric bool
		aspect    bool
	)
	cmd := &cobra.Command{
		Use:   "density [file]",
		Short: "Plot a matrix as a color density image",
		Long: `Plot a matrix, one row per line, as a color density image.
Row 0 is drawn at the bottom. Reads stdin without a file or for "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			if fl.Changed("symmetric") {
				a.opts.SymmetricZ = symmetric
			}
			if fl.Changed("aspect") {
				a.opts.PreserveAspect = aspect
			}
			name := inputName(args)
			rows, err := readFile(name)
			if err != nil {
				return err
			}
			g, err := data.NewGridRows(rows)
			if err != nil {
				return err
			}
			dv := density.New().SetMatrix(g)
			switch len(geometry) {
			case 0:
			case 4:
				if err := dv.SetGeometry(geometry[0], geometry[1], geometry[2], geometry[3]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--geometry needs xmin,dx,ymin,dy: %w", density.ErrGeometry)
			}
			reload := func() error {
				rows, err := readFile(name)
				if err != nil {
					return err
				}
				flat := make([]float64, 0, len(rows)*len(rows[0]))
				for _, r := range rows {
					if len(r) != len(rows[0]) {
						return ErrRagged
					}
					flat = append(flat, r...)
				}
				return g.SetValues(len(rows), len(rows[0]), flat)
			}
			return a.plot(cmd.Context(), name, reload, dv)
		},
	}
	cmd.Flags().Float64SliceVar(&geometry, "geometry", nil, "xmin,dx,ymin,dy of the cells")
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "center the color range on zero")
	cmd.Flags().BoolVar(&aspect, "aspect", false, "keep cells square")
	return cmd
}

func (a *app) scatterCmd() *cobra.Command {
	var labels []string
	cmd := &cobra.Command{
		Use:   "scatter [file]",
		Short: "Plot columns as lines",
		Long: `Plot columns as lines. With one column it is plotted against its
index, otherwise the first column is X for all the others.
Reads stdin without a file or for "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputName(args)
			rows, err := readFile(name)
			if err != nil {
				return err
			}
			cols, err := columns(rows)
			if err != nil {
				return err
			}
			var x *data.Floats
			ys := cols
			if len(cols) > 1 {
				x = data.NewFloats(cols[0]...)
				ys = cols[1:]
			}
			lut := colormap.MustNamed(a.opts.ColorMap)
			vecs := make([]*data.Floats, len(ys))
			views := make([]cartesian.Host, len(ys))
			for i, y := range ys {
				vecs[i] = data.NewFloats(y...)
				sv := scatter.New()
				if x != nil {
					sv.SetData(x, vecs[i])
				} else {
					sv.SetData(nil, vecs[i])
				}
				if len(ys) > 1 {
					sv.SetColor(lut.Map(float64(i) / float64(len(ys)-1)))
				}
				if i < len(labels) {
					sv.SetLabel(labels[i])
				}
				views[i] = sv
			}
			reload := func() error {
				rows, err := readFile(name)
				if err != nil {
					return err
				}
				cols, err := columns(rows)
				if err != nil {
					return err
				}
				if len(cols) != len(ys)+btoi(x != nil) {
					return fmt.Errorf("%d columns, not %d: %w", len(cols), len(ys)+btoi(x != nil), ErrRagged)
				}
				if x != nil {
					x.SetValues(cols[0])
					cols = cols[1:]
				}
				for i, c := range cols {
					vecs[i].SetValues(c)
				}
				return nil
			}
			return a.plot(cmd.Context(), name, reload, views...)
		},
	}
	cmd.Flags().StringSliceVarP(&labels, "labels", "l", nil, "legend labels of the Y columns")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Write the effective options, defaults included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "viewplot.toml"
			if len(args) > 0 {
				name = args[0]
			}
			if err := a.opts.Save(name); err != nil {
				return err
			}
			a.status("wrote %s", name)
			return nil
		},
	}
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// plot renders the views once and, with --watch, again after every
// change of the input file until the context is done.
func (a *app) plot(ctx context.Context, name string, reload func() error, views ...cartesian.Host) error {
	w := plotwidget.New()
	for _, v := range views {
		if err := w.AddView(v); err != nil {
			return err
		}
	}
	if err := w.ApplyOptions(a.opts); err != nil {
		return err
	}
	if err := a.render(w); err != nil {
		return err
	}
	if !a.watch {
		return nil
	}
	if name == "-" {
		return ErrWatchStdin
	}
	return a.watchLoop(ctx, w, name, reload)
}

func (a *app) watchLoop(ctx context.Context, w *plotwidget.Widget, name string, reload func() error) error {
	target, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// the directory, so that editors replacing the file are seen
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	dirty := false
	conn := w.Changed().Connect(func() { dirty = true })
	defer w.Changed().Disconnect(conn)

	var tick <-chan time.Time
	if rate := w.MaxFrameRate(); rate > 0 {
		t := time.NewTicker(time.Duration(float64(time.Second) / rate))
		defer t.Stop()
		tick = t.C
	}
	flush := func() {
		if !dirty {
			return
		}
		dirty = false
		errors.Log(a.render(w))
	}
	a.status("watching %s", name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != target {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			slog.Debug("viewplot: input changed", "file", name, "op", event.Op)
			w.FreezeAll()
			err := reload()
			w.ThawAll()
			if errors.Log(err) != nil {
				continue
			}
			if tick == nil {
				flush()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("viewplot: watch", "err", err)
		case now := <-tick:
			if w.Tick(now) {
				flush()
			}
		}
	}
}

// render writes the plot to the output file.
func (a *app) render(w *plotwidget.Widget) error {
	img := w.Render(a.opts.Width, a.opts.Height)
	if err := writePNG(a.out, img); err != nil {
		return err
	}
	a.status("wrote %s (%dx%d)", a.out, a.opts.Width, a.opts.Height)
	return nil
}

// writePNG writes img to a temporary file next to name and renames it,
// so that readers never see a partial image.
func writePNG(name string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(name), ".viewplot-*.png")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, name)
}

func (a *app) status(format string, args ...any) {
	if a.quiet {
		return
	}
	msg := a.term.String(fmt.Sprintf(format, args...)).Foreground(termenv.ANSIGreen)
	fmt.Fprintln(a.term, msg)
}
