package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/anybox"
)

func main() {
	var (
		typeName    = flag.String("type", "", "Sample type to box (see -list)")
		value       = flag.String("value", "", "Value literal to store")
		list        = flag.Bool("list", false, "List sample types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Log dispatcher generation")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err == nil {
			anybox.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *list {
		fmt.Println("Sample types:")
		for _, s := range samples {
			fmt.Printf("  %-8s %s\n", s.name, s.hint)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -type <name> [-value literal]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*typeName, *value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds a box from the literal and prints the raw-layout transcript of
// the container contract: the original, an independent copy, and both sides
// of a move.
func run(typeName, value string) error {
	s := findSample(typeName)
	if s == nil {
		return fmt.Errorf("unknown type %q (try -list)", typeName)
	}

	var b anybox.Box
	if err := s.build(value, &b); err != nil {
		return fmt.Errorf("parse value: %w", err)
	}

	fmt.Print(renderView("box", anybox.Inspect(&b)))

	var cp anybox.Box
	cp.CopyFrom(&b)
	fmt.Print(renderView("copy", anybox.Inspect(&cp)))

	var mv anybox.Box
	mv.MoveFrom(&b)
	fmt.Print(renderView("moved-to", anybox.Inspect(&mv)))
	fmt.Print(renderView("moved-from", anybox.Inspect(&b)))
	return nil
}

func renderView(label string, v anybox.View) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", label)
	if v.Mode == anybox.ModeEmpty {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "  type:       %s\n", v.TypeName)
	fmt.Fprintf(&sb, "  mode:       %s\n", v.Mode)
	fmt.Fprintf(&sb, "  dispatcher: 0x%x\n", v.Dispatcher)
	if v.Mode == anybox.ModeHeap {
		fmt.Fprintf(&sb, "  heap:       0x%x\n", v.Heap)
	}
	fmt.Fprintf(&sb, "  size/align: %d/%d\n", v.Size, v.Align)
	for i := 0; i < len(v.Bytes); i += 16 {
		end := i + 16
		if end > len(v.Bytes) {
			end = len(v.Bytes)
		}
		fmt.Fprintf(&sb, "  %04x  % x\n", i, v.Bytes[i:end])
	}
	return sb.String()
}

// pair fits the inline buffer: two words, pointer-free.
type pair struct {
	X, Y int64
}

// blob exceeds the inline capacity and takes the heap path by size alone.
type blob struct {
	Data [32]byte
	Len  int
}

type sample struct {
	name  string
	hint  string
	build func(val string, b *anybox.Box) error
}

var samples = []sample{
	{"int", "decimal integer, stored inline", func(val string, b *anybox.Box) error {
		v, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		anybox.Store(b, v)
		return nil
	}},
	{"uint64", "decimal integer, stored inline", func(val string, b *anybox.Box) error {
		v, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return err
		}
		anybox.Store(b, v)
		return nil
	}},
	{"float64", "decimal float, stored inline", func(val string, b *anybox.Box) error {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		anybox.Store(b, v)
		return nil
	}},
	{"bool", "true or false, stored inline", func(val string, b *anybox.Box) error {
		v, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		anybox.Store(b, v)
		return nil
	}},
	{"pair", "two comma-separated int64s, 16 bytes inline", func(val string, b *anybox.Box) error {
		parts := strings.SplitN(val, ",", 2)
		if len(parts) != 2 {
			return fmt.Errorf("want X,Y")
		}
		x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return err
		}
		y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return err
		}
		anybox.Store(b, pair{X: x, Y: y})
		return nil
	}},
	{"string", "text, heap-stored (pointer-bearing header)", func(val string, b *anybox.Box) error {
		anybox.Store(b, val)
		return nil
	}},
	{"blob", "up to 32 bytes of text, heap-stored (over capacity)", func(val string, b *anybox.Box) error {
		if len(val) > 32 {
			return fmt.Errorf("blob holds at most 32 bytes, got %d", len(val))
		}
		anybox.Emplace[blob](b, func(p *blob) {
			copy(p.Data[:], val)
			p.Len = len(val)
		})
		return nil
	}},
}

func findSample(name string) *sample {
	for i := range samples {
		if samples[i].name == name {
			return &samples[i]
		}
	}
	return nil
}
