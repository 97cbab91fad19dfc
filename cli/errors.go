package cli

import "fmt"

func errUnknownTheme(name string) error {
	return fmt.Errorf("--theme: unknown theme %q (want dark or light)", name)
}
