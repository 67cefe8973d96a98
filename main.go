// SPDX-License-Identifier: MPL-2.0

package main

import cmd "mkmod/cmd/mkmod"

func main() {
	cmd.Execute()
}
