// Package conv provides overflow-safe integer conversions between arbitrary
// integer types and the platform word types (int and uint).
//
// Every conversion reports whether the value survived unchanged instead of
// truncating silently. The functions are generic over
// constraints.Integer so a single definition serves every width and
// signedness, including named integer types.
//
// The checks are written so that the compiler folds them away when they
// cannot fail (for example ToUint on a uint8, or ToInt on an int32 on a
// 64-bit platform). On those paths a conversion costs nothing beyond the
// cast itself.
package conv
