/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SAP/page-url-manager/internal/config"
	"github.com/SAP/page-url-manager/internal/params"
	"github.com/SAP/page-url-manager/internal/urlmanager"
	"github.com/SAP/page-url-manager/internal/utils/log_utils"
)

type options struct {
	page       string
	lang       string
	paramsFile string
	raw        bool
	pairs      []string
}

func main() {
	var opts options
	var loggerUseDevMode bool
	flag.StringVar(&opts.page, "page", "", "The code of the page to link to.")
	flag.StringVar(&opts.lang, "lang", "", "The language code passed to the path template.")
	flag.StringVar(&opts.paramsFile, "params-file", "", "A YAML file with a list of name/value parameters.")
	flag.BoolVar(&opts.raw, "raw", false,
		"Join parameters with '&' instead of '&amp;'. "+
			"Use it for urls which are not embedded in markup, e.g. redirects.")
	flag.BoolVar(&loggerUseDevMode, "logger_use_dev_mode", true,
		"Sets the logger to use dev mode, e.g. more friendly printing format")

	flag.Parse()
	opts.pairs = flag.Args()

	log, err := newLogger(loggerUseDevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %v\n", err)
		os.Exit(1)
	}
	setupLog := log.WithName("setup")

	manager, err := newManager(setupLog)
	if err != nil {
		os.Exit(1)
	}

	ctx := log_utils.WithLogger(context.Background(), log.WithValues("correlation_id", uuid.New().String()))
	if err := run(ctx, manager, opts, os.Stdout); err != nil {
		log_utils.GetLogger(ctx).Error(err, "unable to create page url")
		os.Exit(1)
	}
}

func newLogger(devMode bool) (logr.Logger, error) {
	var zapLog *zap.Logger
	var err error
	if devMode {
		zapLog, err = zap.NewDevelopment()
	} else {
		zapLog, err = zap.NewProduction()
	}
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zapLog), nil
}

// newManager builds the url manager from the environment, logging the failure
func newManager(setupLog logr.Logger) (*urlmanager.URLManager, error) {
	cfg, err := config.Load()
	if err != nil {
		setupLog.Error(err, "unable to load configuration")
		return nil, err
	}
	manager, err := urlmanager.New(cfg)
	if err != nil {
		setupLog.Error(err, "unable to create url manager")
		return nil, err
	}
	return manager, nil
}

func run(ctx context.Context, manager urlmanager.Manager, opts options, out io.Writer) error {
	if len(opts.page) == 0 {
		return fmt.Errorf("missing required flag -page")
	}

	p := params.New()
	if len(opts.paramsFile) > 0 {
		data, err := os.ReadFile(opts.paramsFile)
		if err != nil {
			return err
		}
		fromFile, err := params.FromYAML(data)
		if err != nil {
			return fmt.Errorf("invalid parameters file %s: %w", opts.paramsFile, err)
		}
		p.SetAll(fromFile)
	}
	p.SetAll(params.FromPairs(opts.pairs))

	pageURL := manager.CreateURL(ctx).
		SetPageCode(opts.page).
		SetLangCode(opts.lang).
		AddParams(p)
	if opts.raw {
		pageURL.SetEscapeAmp(false)
	}

	url, err := pageURL.URL()
	if err != nil {
		return err
	}
	log_utils.GetLogger(ctx).V(1).Info("created page url", "page", opts.page, "params", p.Len())
	_, err = fmt.Fprintln(out, url)
	return err
}
