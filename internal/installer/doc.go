// Package installer installs the JDK Manager CLI onto the local machine.
//
// CLIInstaller implements the install capability the installer form calls.
// One Install call runs this pipeline:
//
//  1. Locate the jdk CLI source tree (configured root, the parent of the
//     installer's directory, or the working directory)
//  2. Build it (default: make build)
//  3. Find dist/jdk (dist/jdk.exe on Windows)
//  4. Create the target directory and copy the binary into it (mode 0755)
//  5. Run scripts/install.sh under sudo, or scripts/install.ps1 through
//     PowerShell on Windows
//
// Every failure is returned as an *InstallError naming the stage that failed:
//
//	msg, err := inst.Install(ctx, "/usr/local/bin")
//	var ierr *installer.InstallError
//	if errors.As(err, &ierr) {
//	    tips := installer.Troubleshooting(ierr.Stage)
//	}
//
// External commands run through the Runner interface. ExecRunner is the
// os/exec implementation.
package installer
