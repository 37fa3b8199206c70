// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounttest

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/mount"
	"github.com/xmidt-org/mount/mountdeploy"
	"github.com/xmidt-org/mount/mounthttp"
	"go.uber.org/fx"
)

// SuiteTestSuite embeds Suite in the expected way and verifies
// that the suite lifecycle works properly
type SuiteTestSuite struct {
	Suite
}

func (suite *SuiteTestSuite) TestResetViper() {
	original := suite.Viper()
	suite.Require().NotNil(original, "the test setup did not run")

	reset := suite.ResetViper()
	suite.True(original != reset)
	suite.True(suite.Viper() == reset)
}

func (suite *SuiteTestSuite) TestYAML() {
	const yaml = `
keys:
  - value1
  - value2
`

	for name, source := range map[string]any{
		"string":    yaml,
		"[]byte":    []byte(yaml),
		"io.Reader": strings.NewReader(yaml),
	} {
		suite.Run(name, func() {
			suite.ResetViper()
			suite.YAML(source)
			suite.Equal([]string{"value1", "value2"}, suite.Viper().GetStringSlice("keys"))
		})
	}

	suite.Run("InvalidType", func() {
		suite.ResetViper()
		suite.Panics(func() {
			suite.YAML(123)
		})
	})
}

func (suite *SuiteTestSuite) TestJSON() {
	suite.JSON(`{"keys": ["value1", "value2"]}`)
	suite.Equal([]string{"value1", "value2"}, suite.Viper().GetStringSlice("keys"))

	suite.Panics(func() {
		suite.JSON(123)
	})
}

func (suite *SuiteTestSuite) TestFxtest() {
	suite.YAML(`
key: value
`)

	var value string
	app := suite.Fxtest(
		fx.Provide(
			mount.UnmarshalKey("key", ""),
		),
		fx.Populate(&value),
	)

	suite.Equal("value", value)
	suite.RequireStart(app)
	suite.RequireStop(app)
}

func (suite *SuiteTestSuite) TestFx() {
	suite.YAML(`
server:
  hostname: 127.0.0.1
  rootResourcePath: /suite
`)

	var adapter *mounthttp.Adapter
	app := suite.Fx(
		mounthttp.Provide(
			"server",
			mounthttp.WithApplication(mountdeploy.Basic{}),
		),
		fx.Populate(&adapter),
	)

	suite.Require().NoError(app.Err())
	suite.RequireStart(app)

	response, err := http.Get(URL(adapter, "/suite/anything"))
	suite.Require().NoError(err)
	response.Body.Close()
	suite.Equal(http.StatusNotFound, response.StatusCode)

	suite.RequireStop(app)
	suite.Equal(mounthttp.Stopped, adapter.State())
}

func (suite *SuiteTestSuite) TestRequireStartInvalidType() {
	suite.Panics(func() {
		suite.RequireStart(123)
	})
}

func (suite *SuiteTestSuite) TestRequireStopInvalidType() {
	suite.Panics(func() {
		suite.RequireStop(123)
	})
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(SuiteTestSuite))
}
