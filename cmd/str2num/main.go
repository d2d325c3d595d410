// Command str2num classifies numeric text: one line per input with its
// status (success, overflow, underflow, inconvertible), value and stop
// position.
//
//	str2num -type int32 9999999999 2030300
//	printf '1e550\n.5\n' | str2num -type float32
//	str2num -type uint8 -base 16 -prefix "ff apples"
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/aerth/str2num"
	"github.com/aerth/str2num/cancellable"
	"github.com/aerth/str2num/flagpkg"
	"github.com/aerth/str2num/superchan"
	"github.com/aerth/str2num/superlog"
)

type options struct {
	typ    string
	base   int
	prefix bool
	wide   bool
	fail   bool
	logcfg superlog.Config
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	flagpkg.ChoiceVar(fs, &o.typ, "type", "int", "target type", typeNames()...)
	flagpkg.BaseVar(fs, &o.base, "base", 10, "integer base, 0 detects 0x/0o/0b prefixes")
	fs.BoolVar(&o.prefix, "prefix", false, "accept trailing text and report where the number stops")
	fs.BoolVar(&o.wide, "wide", false, "parse as runes (unicode whitespace, rune stop positions)")
	fs.BoolVar(&o.fail, "fail", true, "exit 1 if any input does not convert")
	flagpkg.InverseBoolVarSet(fs, &o.fail, "no-fail", true, "always exit 0")
	fs.BoolVar(&o.logcfg.Syslog, "syslog", false, "log to syslog")
	fs.BoolVar(&o.logcfg.Journal, "journal", false, "log to the systemd journal")
	fs.StringVar(&o.logcfg.RemoteSyslog, "remote-syslog", "", "log to remote syslog `host:port` (udp)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.logcfg.Prefix = "str2num: "
	return o, nil
}

func (o *options) parseOptions() []str2num.Option {
	opts := []str2num.Option{str2num.WithBase(o.base)}
	if o.prefix {
		opts = append(opts, str2num.WithStopPosition())
	}
	return opts
}

// run writes one row per input to w and returns how many failed.
func run(ctx context.Context, o *options, inputs <-chan string, w io.Writer, logger *log.Logger) (failed int, err error) {
	conv := converters[o.typ]
	opts := o.parseOptions()
	for {
		select {
		case <-ctx.Done():
			return failed, context.Cause(ctx)
		case in, ok := <-inputs:
			if !ok {
				return failed, nil
			}
			r := conv(in, o.wide, opts)
			if r.Status != str2num.Success {
				failed++
				logger.Printf("%q as %s: %v", in, o.typ, r.Status.Err())
			}
			if _, err := fmt.Fprintln(w, r); err != nil {
				return failed, err
			}
		}
	}
}

// feed sends args, or stdin lines when there are none. The returned chan
// is closed when the inputs run out or ctx is done.
func feed(ctx context.Context, args []string, stdin io.Reader, logger *log.Logger) cancellable.Chan[string] {
	ch := cancellable.NewChanSize[string](ctx, 0)
	go func() {
		defer ch.Cancel(nil)
		defer ch.CloseChan()
		if len(args) > 0 {
			for _, a := range args {
				if !ch.Send(a) {
					return
				}
			}
			return
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if !ch.Send(sc.Text()) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			logger.Printf("reading stdin: %v", err)
		}
	}()
	return ch
}

// execute runs o over args (or stdin) until the inputs run out or mainctx
// is cancelled. w is flushed by mainctx's last deferred func, once run has
// returned, so rows written before a signal are not lost.
func execute(mainctx *superchan.Main, o *options, args []string, stdin io.Reader, w *bufio.Writer, logger *log.Logger) (int, error) {
	finished := make(chan struct{})
	var flushErr error
	mainctx.DeferLast(func() {
		<-finished
		flushErr = w.Flush()
	})
	failed, err := run(mainctx, o, feed(mainctx, args, stdin, logger).UpdatesChan(), w, logger)
	close(finished)
	mainctx.Cancel(nil)
	_ = mainctx.Wait()
	if err == nil {
		err = flushErr
	}
	return failed, err
}

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger, err := superlog.New(o.logcfg)
	if err != nil {
		logger.Printf("logging to stderr: %v", err)
	}
	superchan.Log = logger
	mainctx := superchan.NewMain(context.Background(), os.Interrupt, syscall.SIGTERM)

	failed, err := execute(mainctx, o, flag.Args(), os.Stdin, bufio.NewWriter(os.Stdout), logger)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
	if o.fail && failed > 0 {
		os.Exit(1)
	}
}
