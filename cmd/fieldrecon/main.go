// Command fieldrecon is the end-to-end driver that reads a YAML scene
// file, assembles and solves the reconstruction system, and prints an
// error-attribution summary. It owns no mechanism from the core
// packages: it owns the CLI flags and wires together the config,
// fieldbuilder, solver and erroratt packages.
package main

func main() {
	Execute()
}
