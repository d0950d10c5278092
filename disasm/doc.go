// Package disasm renders an octet binary image as an assembly listing.
//
// The walk is purely sequential from isa.PROGRAM_BASE: data embedded in the
// image is decoded as if it were code, and labels are not recovered.
package disasm
