// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package mountdeploy describes applications that are deployed under a URL
prefix and computes the effective prefix, or root path, for each deployment.

The root path comes from exactly one of three places, in order of precedence:

  - the manual RootPath of a Descriptor, when it is set
  - the base path the application itself declares, via ApplicationPath
  - DefaultRootPath

Applications are either supplied directly on a Descriptor or looked up by name
in a Registry, which builds them with go.uber.org/dig.
*/
package mountdeploy
