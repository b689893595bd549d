// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/plotstyle/plots"
	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return strings.TrimSpace(out.String()), err
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestLossCommand(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", "epoch,loss\n0,0.9\n1,0.5\n2,0.3\n3,0.2\n")
	val := writeFile(t, dir, "val.jsonl", "{\"loss\": 1.0}\n{\"loss\": 0.7}\n{\"loss\": 0.6}\n")
	out := filepath.Join(dir, "figs")

	path, err := run(t, "loss", train, val, "--out", out, "-q")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "loss.eps"), path)
	mt, err := mimetype.DetectFile(path)
	require.NoError(t, err)
	assert.True(t, mt.Is("application/postscript"))

	path, err = run(t, "loss", train, "--out", out, "--name", "train.png", "--label", "training", "--title", "run")
	require.NoError(t, err)
	mt, err = mimetype.DetectFile(path)
	require.NoError(t, err)
	assert.True(t, mt.Is("image/png"))
}

func TestLossCommandErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "loss")
	assert.Error(t, err)

	_, err = run(t, "loss", filepath.Join(dir, "missing.csv"), "--out", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	train := writeFile(t, dir, "train.csv", "epoch,loss\n0,0.9\n")
	_, err = run(t, "loss", train, "--column", "acc", "--out", dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "train.csv")
}

func TestLossCommandStyle(t *testing.T) {
	dir := t.TempDir()
	style := writeFile(t, dir, "style.toml", "[loss]\nyscale = \"log\"\n\n[save]\nformat = \"svg\"\n")
	train := writeFile(t, dir, "train.txt", "0.09\n0.05\n0.02\n")
	path, err := run(t, "--style", style, "loss", train, "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "loss.svg"), path)

	bad := writeFile(t, dir, "bad.txt", "0.09\n0\n")
	_, err = run(t, "--style", style, "loss", bad, "--out", dir)
	assert.ErrorIs(t, err, plots.ErrNonPositive)
}

func TestScatterCommand(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "points.csv", "a,b\n1,2\n2,4\n3,5\n")
	path, err := run(t, "scatter", data, "--x", "a", "--y", "b", "--out", dir, "--format", "pdf", "--label", "b vs a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scatter.pdf"), path)
	mt, err := mimetype.DetectFile(path)
	require.NoError(t, err)
	assert.True(t, mt.Is("application/pdf"))

	_, err = run(t, "scatter", data, "--x", "a", "--y", "c", "--out", dir)
	assert.Error(t, err)
}

func TestStyleCommand(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "style.yaml")
	path, err := run(t, "style", fn)
	require.NoError(t, err)
	assert.Equal(t, fn, path)
	cf, err := plots.OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, plots.NewConfig(), cf)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "train.txt", "1\n")
	other := filepath.Join(dir, "other.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renders := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{fn}, func() error {
			renders <- struct{}{}
			return nil
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	got := false
	for !got {
		select {
		case <-renders:
			got = true
		case <-tick.C:
			require.NoError(t, os.WriteFile(other, []byte("x"), 0666))
			require.NoError(t, os.WriteFile(fn, []byte("1\n0.5\n"), 0666))
		case <-deadline:
			t.Fatal("no render after the log changed")
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestSaveOptions(t *testing.T) {
	a := &app{config: plots.NewConfig()}
	assert.Equal(t, "eps", a.saveOptions("loss", "").Format)
	assert.Equal(t, "", a.saveOptions("loss.png", "").Format)
	assert.Equal(t, "svg", a.saveOptions("loss.png", "svg").Format)
}
