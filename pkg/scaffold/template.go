// SPDX-License-Identifier: MPL-2.0

package scaffold

import "fmt"

// testTemplate is the content written into a new module file when a
// companion test file is created. It declares the test module and links it
// by relative path.
func testTemplate(name string) string {
	return fmt.Sprintf(`
#[cfg(test)]
#[path = "./%[1]s_test.rs"]
mod %[1]s_test;
`, name)
}
