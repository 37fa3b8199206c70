// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounttest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/mount"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Suite is an embeddable type that makes viper-related tests simpler.
// Embed this type in testify/suite-style test types.
type Suite struct {
	suite.Suite

	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance for each test
func (suite *Suite) SetupTest() {
	suite.ResetViper()
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// ResetViper replaces the current viper instance, which is returned.
// Subtests that each need their own configuration use this.
func (suite *Suite) ResetViper() *viper.Viper {
	suite.viper = viper.New()
	return suite.viper
}

func (suite *Suite) read(configType string, v any) {
	var source io.Reader
	switch t := v.(type) {
	case string:
		source = strings.NewReader(t)

	case []byte:
		source = bytes.NewReader(t)

	case io.Reader:
		source = t

	default:
		panic(fmt.Errorf("%T is not a valid %s source", v, configType))
	}

	suite.viper.SetConfigType(configType)
	suite.Require().NoError(
		suite.viper.ReadConfig(source),
	)
}

// YAML reads configuration into the current viper instance.  The v
// parameter may be a string, a []byte, or an io.Reader.
func (suite *Suite) YAML(v any) {
	suite.read("yaml", v)
}

// JSON is like YAML, but for JSON configuration.
func (suite *Suite) JSON(v any) {
	suite.read("json", v)
}

func (suite *Suite) options(more []fx.Option) []fx.Option {
	return append(
		[]fx.Option{
			mount.TestLogger(suite.T()),
			mount.ForViper(suite.viper),
		},
		more...,
	)
}

// Fxtest creates an *fxtest.App with the current viper instance and test logging.
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return fxtest.New(suite.T(), suite.options(more)...)
}

// Fx creates an *fx.App with the current viper instance and test logging.
func (suite *Suite) Fx(more ...fx.Option) *fx.App {
	return fx.New(suite.options(more)...)
}

// RequireStart starts an *fx.App or an *fxtest.App, halting the test on any error.
func (suite *Suite) RequireStart(app any) {
	switch t := app.(type) {
	case *fxtest.App:
		t.RequireStart()

	case *fx.App:
		suite.Require().NoError(t.Start(context.Background()))

	default:
		panic(fmt.Errorf("%T is not an fx application", app))
	}
}

// RequireStop is the counterpart to RequireStart.
func (suite *Suite) RequireStop(app any) {
	switch t := app.(type) {
	case *fxtest.App:
		t.RequireStop()

	case *fx.App:
		suite.Require().NoError(t.Stop(context.Background()))

	default:
		panic(fmt.Errorf("%T is not an fx application", app))
	}
}
