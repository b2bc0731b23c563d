package catalog

import "fmt"

type UnknownMachineTypeError struct {
	MachineType string
}

func (e UnknownMachineTypeError) Error() string {
	return fmt.Sprintf("unknown machine type: %s", e.MachineType)
}

type UnknownDiskTypeError struct {
	DiskType string
}

func (e UnknownDiskTypeError) Error() string {
	return fmt.Sprintf("unknown disk type: %s", e.DiskType)
}

type UnknownMachineFamilyError struct {
	MachineFamily string
}

func (e UnknownMachineFamilyError) Error() string {
	return fmt.Sprintf("unknown machine family: %s", e.MachineFamily)
}
