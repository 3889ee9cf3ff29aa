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

package video

// Bit masks for TIA register values.
const (
	CTRLPFPriorityMask  = 0x04
	CTRLPFScoremodeMask = 0x02
	CTRLPFReflectedMask = 0x01
	CTRLPFBallSizeMask  = 0x30
	CTRLPFBallSizeShift = 4
	REFPxMask           = 0x08
	VDELxxMask          = 0x01
	RESMPxMask          = 0x02
	ENAxxMask           = 0x02
	HMxxMask            = 0xf0
	NUSIZxCopiesMask    = 0x07
	NUSIZxSizeMask      = 0x30
	NUSIZxSizeShift     = 4
	VBLANKMask          = 0x02
)
