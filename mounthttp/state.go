// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import "strconv"

// State is the lifecycle state of an Adapter.
type State int32

const (
	Stopped State = iota
	Starting
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"

	case Starting:
		return "starting"

	case Running:
		return "running"

	case Stopping:
		return "stopping"

	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}
