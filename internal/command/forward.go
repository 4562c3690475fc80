package command

// ForwardArgs returns the backend arguments for forwarding d verbatim as one invocation.
func (d Descriptor) ForwardArgs() []string {
	args := []string{d.Verb.String()}
	args = append(args, d.Packages...)
	if d.OutputPath != "" {
		args = append(args, flagOutputShort, d.OutputPath)
	}
	return append(args, d.Extra...)
}

// PackageArgs returns the backend arguments that apply d's verb to a single package.
func (d Descriptor) PackageArgs(packageID string) []string {
	args := []string{d.Verb.String(), packageID}
	return append(args, d.Extra...)
}

// SingleArgs returns weget arguments that replay d for one package.
// outputPath replaces d.OutputPath so a spawned process does not depend on the caller's working directory.
func (d Descriptor) SingleArgs(packageID string, outputPath string) []string {
	args := []string{d.Verb.String(), packageID}
	if outputPath != "" {
		args = append(args, flagOutputShort, outputPath)
	}
	if d.Archive {
		args = append(args, flagArchiveShort)
	}
	if d.Run {
		args = append(args, flagRunShort)
	}
	if len(d.Extra) > 0 {
		args = append(args, argsSeparator)
		args = append(args, d.Extra...)
	}
	return args
}
