// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/viewplot/config"
	"cogentcore.org/viewplot/views/density"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a buffer safe for the watch loop goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

func execute(t *testing.T, ctx context.Context, out *syncBuffer, args ...string) error {
	a := newApp(termenv.NewOutput(out))
	root := a.rootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func decodePNG(t *testing.T, name string) image.Image {
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestDensityCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "m.txt", "1 2\n3 4\n")
	out := filepath.Join(dir, "m.png")
	var status syncBuffer
	require.NoError(t, execute(t, context.Background(), &status,
		"density", in, "-o", out, "--width", "200", "--height", "120", "--symmetric"))
	assert.Equal(t, image.Rect(0, 0, 200, 120), decodePNG(t, out).Bounds())
	assert.Contains(t, status.String(), "wrote "+out)

	err := execute(t, context.Background(), &status, "density", in, "-o", out, "--geometry", "0,1")
	assert.ErrorIs(t, err, density.ErrGeometry)
}

func TestScatterCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "s.txt", "0 1 5\n1 2 4\n2 3 3\n")
	out := filepath.Join(dir, "s.png")
	var status syncBuffer
	require.NoError(t, execute(t, context.Background(), &status,
		"scatter", in, "-o", out, "-l", "up,down"))
	assert.Equal(t, image.Rect(0, 0, 640, 480), decodePNG(t, out).Bounds())

	bad := writeFile(t, dir, "bad.txt", "0 1\n2\n")
	assert.ErrorIs(t, execute(t, context.Background(), &status, "scatter", bad, "-o", out), ErrRagged)
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "opts.toml")
	var status syncBuffer
	require.NoError(t, execute(t, context.Background(), &status, "config", cfg, "--width", "300", "-q"))
	assert.Empty(t, status.String())
	o, err := config.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, 300, o.Width)

	// the written file is read back by --config
	in := writeFile(t, dir, "m.txt", "1 2\n")
	out := filepath.Join(dir, "m.png")
	require.NoError(t, execute(t, context.Background(), &status, "density", in, "-o", out, "-c", cfg, "-q"))
	assert.Equal(t, 300, decodePNG(t, out).Bounds().Dx())

	assert.ErrorIs(t, execute(t, context.Background(), &status, "config", cfg, "--width", "0"), config.ErrInvalid)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "m.txt", "1 2\n3 4\n")
	out := filepath.Join(dir, "m.png")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var status syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- execute(t, ctx, &status, "density", in, "-o", out, "--watch")
	}()
	require.Eventually(t, func() bool {
		return strings.Contains(status.String(), "watching")
	}, 5*time.Second, 10*time.Millisecond)

	writeFile(t, dir, "m.txt", "1 2 3\n4 5 6\n7 8 9\n")
	require.Eventually(t, func() bool {
		return strings.Count(status.String(), "wrote ") >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
