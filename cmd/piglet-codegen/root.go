// Copyright 2026 The Piglet Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command piglet-codegen connects to a liquid-handling robot, introspects
// its self-describing object tree, and emits a statically typed Go client
// library for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/escalante-bio/piglet-codegen/codegen"
	"github.com/escalante-bio/piglet-codegen/emit"
	"github.com/escalante-bio/piglet-codegen/globaltypes"
	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/probe"
	"github.com/escalante-bio/piglet-codegen/transport"
)

var (
	outputDir    string
	configFile   string
	manifestFile string
	timeout      time.Duration
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "piglet-codegen <address> <name>",
		Short: "Generate a typed Go client from a live robot's introspected schema",
		Args:  cobra.ExactArgs(2),
		RunE:  runGenerate,
	}
	cmd.PersistentFlags().StringVar(&outputDir, "output-dir", "piglet_generated/src", "root directory for generated output")
	cmd.PersistentFlags().StringVar(&configFile, "config_file", "", "path to config file (forward-compatible hook; no flag yet reads from it)")
	cmd.PersistentFlags().StringVar(&manifestFile, "manifest_file", "", "if set, write a JSON generation manifest (module, version, address count) to this path")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "deadline applied to the whole generation run")
	// Bridge glog's flags (-v, -logtostderr, ...) onto the cobra flag set so
	// verbosity works without a separate flag.Parse pass.
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		viper.AutomaticEnv()
		return nil
	}
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	address, name := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	glog.Infof("Connecting to %s...", address)
	raw, err := connect(ctx, address)
	if err != nil {
		return &transport.ConnectError{Address: address, Cause: err}
	}
	client := transport.NewShared(raw)
	defer func() {
		if cerr := client.Close(); cerr != nil {
			glog.Errorf("error closing robot: %v", cerr)
		}
	}()

	p := probe.New(client)

	globalRoots, err := client.Globals(ctx)
	if err != nil {
		return fmt.Errorf("listing global roots: %w", err)
	}
	objectRoots, err := client.Objects(ctx)
	if err != nil {
		return fmt.Errorf("listing object roots: %w", err)
	}

	glog.Infof("Building global type index over %d global roots", len(globalRoots))
	global, err := globaltypes.Build(ctx, globalRoots, p, func(typeName string) string { return names.MethodCallName(typeName) })
	if err != nil {
		return fmt.Errorf("building global type index: %w", err)
	}

	glog.Infof("Walking object tree")
	result, err := codegen.BuildModules(ctx, p, global, globalRoots, objectRoots)
	if err != nil {
		return fmt.Errorf("building modules: %w", err)
	}

	root := filepath.Join(outputDir, name)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", root, err)
	}

	pkgName := names.MethodCallName(name)
	for _, module := range result.Modules {
		fname := emit.FileName(module.Name)
		path := filepath.Join(root, fname)
		glog.V(1).Infof("Writing %s", path)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		err = emit.Module(f, module, pkgName)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}

	indexPath := filepath.Join(outputDir, name+".go")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", indexPath, err)
	}
	err = emit.Manifest(f, pkgName, result.Modules)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("writing %s: %w", indexPath, err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", indexPath, closeErr)
	}

	if manifestFile != "" {
		f, err := os.Create(manifestFile)
		if err != nil {
			return fmt.Errorf("creating %s: %w", manifestFile, err)
		}
		err = codegen.WriteManifest(f, result.Modules)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("writing %s: %w", manifestFile, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing %s: %w", manifestFile, closeErr)
		}
	}

	glog.Infof("Wrote %d modules to %s", len(result.Modules), root)
	return nil
}
