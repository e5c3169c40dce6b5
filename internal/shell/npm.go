package shell

// Tools names the package-manager binaries used to build commands.
type Tools struct {
	Npm string
	Npx string
}

// DefaultTools returns the binaries resolved from PATH.
func DefaultTools() Tools {
	return Tools{Npm: "npm", Npx: "npx"}
}

// NpmInit creates a default package.json in dir.
func (t Tools) NpmInit(dir string) Command {
	return Command{Dir: dir, Name: t.Npm, Args: []string{"init", "-y"}}
}

// NpmInstall installs pkgs in dir, as dev dependencies when dev is true.
func (t Tools) NpmInstall(dir string, dev bool, pkgs ...string) Command {
	args := []string{"install"}
	if dev {
		args = append(args, "-D")
	}
	args = append(args, pkgs...)
	return Command{Dir: dir, Name: t.Npm, Args: args}
}

// CreateVite scaffolds a Vite app at target using the given template.
func (t Tools) CreateVite(target, template string) Command {
	return Command{
		Name: t.Npm,
		Args: []string{"create", "vite@latest", target, "--", "--template", template},
	}
}

// CreateNextApp scaffolds a Next.js app at target. Git initialization by the
// tool is always disabled.
func (t Tools) CreateNextApp(target string, typeScript bool) Command {
	lang := "--js"
	if typeScript {
		lang = "--ts"
	}
	return Command{
		Name: t.Npx,
		Args: []string{
			"create-next-app@latest", target,
			lang,
			"--app",
			"--eslint",
			"--tailwind",
			"--src-dir",
			"--import-alias", "@/*",
			"--no-git",
		},
	}
}
