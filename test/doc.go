// This file is part of VM2600.
//
// VM2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VM2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VM2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test
// immediately. Use a Demand function when the remainder of the test makes no
// sense if the condition does not hold (for example, a program that did not
// assemble should not be run).
//
// The nil value is treated as success by ExpectSuccess() and as a failure
// condition for ExpectFailure(). This is how a nil error is usually
// interpreted.
//
// All functions accept optional tags which are prepended to the failure
// message. Tags are useful when a test loops over a table of cases.
//
// CompareWriter and RingWriter implement io.Writer and are used to capture
// output from functions that write to an io.Writer.
package test
