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

// Package video implements the moveable objects of the TIA and the
// collision logic between them and the playfield. The TIA package composites
// the objects into pixels.
//
// There are five moveable objects, referred to collectively as sprites:
//
//	Player 0  and  Player 1
//	Missile 0  and  Missile 1
//	Ball
//
// Each Sprite is described by its horizontal position, an 8 bit (players) or
// 1 bit (missiles and ball) drawing pattern and the geometry selected by the
// NUSIZx or CTRLPF registers. The geometry is a triple of scale, number of
// copies and spacing between copies. The eight player geometries are:
//
//	0  one copy                (1, 1, 1)
//	1  two copies, close       (1, 2, 2)
//	2  two copies, medium      (1, 2, 4)
//	3  three copies, close     (1, 3, 2)
//	4  two copies, wide        (1, 2, 8)
//	5  double size             (2, 1, 1)
//	6  three copies, medium    (1, 3, 4)
//	7  quad size               (4, 1, 1)
//
// Collisions between the playfield and sprites are accumulated in the
// Collisions type. The value of each of the eight TIA collision registers is
// derived from the accumulated collisions with the Register() function.
package video
