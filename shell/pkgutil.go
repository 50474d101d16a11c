package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// PackageReceiptDatabase queries pkgutil for install receipts.
type PackageReceiptDatabase struct{}

func NewPackageReceiptDatabase() *PackageReceiptDatabase {
	return &PackageReceiptDatabase{}
}

// HasReceipt treats a non-zero pkgutil exit as "no receipt", which is
// how pkgutil reports an unknown identifier.
func (this *PackageReceiptDatabase) HasReceipt(identifier string) (bool, error) {
	err := exec.Command("/usr/sbin/pkgutil", "--pkg-info", identifier).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("pkgutil: %w", err)
}
