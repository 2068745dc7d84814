package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"pbbarcode/core/barcode"
)

// fakeSource serves reads named "<file>/<i>" with one adapter each.
type fakeSource struct {
	perFile map[string]int
	fail    map[string]bool
	delay   map[string]time.Duration
}

func (s fakeSource) Stream(ctx context.Context, path string, emit func(barcode.Read) error) error {
	if d := s.delay[path]; d > 0 {
		time.Sleep(d)
	}
	if s.fail[path] {
		return errors.New("boom")
	}
	for i := 0; i < s.perFile[path]; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := &barcode.SeqRead{Name: fmt.Sprintf("%s/%d", path, i), Regions: []barcode.Interval{{Start: 0, End: 1}}}
		if err := emit(r); err != nil {
			return err
		}
	}
	return nil
}

// fakeLabeler skips reads whose name ends in "/0".
type fakeLabeler struct{ n atomic.Int64 }

func (l *fakeLabeler) Label(r barcode.Read) (barcode.Call, bool) {
	l.n.Add(1)
	if strings.HasSuffix(r.ID(), "/0") {
		return barcode.Call{}, false
	}
	return barcode.Call{ReadID: r.ID(), AdapterCount: len(r.Adapters())}, true
}

func run(t *testing.T, threads int, files []string, src Source) ([]string, []FileStats, error) {
	t.Helper()
	var ids []string
	var stats []FileStats
	err := ForEachCall(context.Background(), Config{
		Threads: threads,
		OnFile:  func(st FileStats) { stats = append(stats, st) },
	}, files, src, &fakeLabeler{}, func(c barcode.Call) error {
		ids = append(ids, c.ReadID)
		return nil
	})
	return ids, stats, err
}

func TestForEachCallOrderIndependentOfThreads(t *testing.T) {
	files := []string{"a", "b", "c", "d"}
	src := fakeSource{
		perFile: map[string]int{"a": 3, "b": 2, "c": 4, "d": 1},
		delay:   map[string]time.Duration{"a": 20 * time.Millisecond, "b": 5 * time.Millisecond},
	}
	serial, _, err := run(t, 1, files, src)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	parallel, stats, err := run(t, 4, files, src)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Fatalf("order differs:\nserial   %v\nparallel %v", serial, parallel)
	}
	want := []string{"a/1", "a/2", "b/1", "c/1", "c/2", "c/3"}
	if !reflect.DeepEqual(serial, want) {
		t.Fatalf("got %v, want %v", serial, want)
	}
	if len(stats) != 4 || stats[0].File != "a" || stats[2].Reads != 4 || stats[2].Labeled != 3 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestForEachCallFailingFileDoesNotStopOthers(t *testing.T) {
	files := []string{"a", "bad", "c"}
	src := fakeSource{
		perFile: map[string]int{"a": 2, "c": 2},
		fail:    map[string]bool{"bad": true},
	}
	ids, stats, err := run(t, 2, files, src)
	if err == nil || !strings.Contains(err.Error(), "bad") {
		t.Fatalf("want error naming bad file, got %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"a/1", "c/1"}) {
		t.Fatalf("ids = %v", ids)
	}
	if len(stats) != 3 || stats[1].Err == nil {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestForEachCallVisitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ForEachCall(context.Background(), Config{Threads: 2}, []string{"a", "b"},
		fakeSource{perFile: map[string]int{"a": 5, "b": 5}}, &fakeLabeler{},
		func(barcode.Call) error {
			n++
			return stop
		})
	if !errors.Is(err, stop) {
		t.Fatalf("want stop, got %v", err)
	}
	if n != 1 {
		t.Fatalf("visit called %d times after error", n)
	}
}

func TestForEachCallCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachCall(ctx, Config{Threads: 2}, []string{"a", "b"},
		fakeSource{perFile: map[string]int{"a": 1, "b": 1}}, &fakeLabeler{},
		func(barcode.Call) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestForEachCallNoFiles(t *testing.T) {
	ids, _, err := run(t, 4, nil, fakeSource{})
	if err != nil || len(ids) != 0 {
		t.Fatalf("ids=%v err=%v", ids, err)
	}
}
