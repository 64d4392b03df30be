package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"

	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

const copySize = 4096

type world struct {
	core *ze.Table
	out  io.Writer
	// leak skips freeing the host allocation.
	leak bool
}

// enumerate returns every device of the first driver.
func (w *world) enumerate() (ze.DriverHandle, []ze.DeviceHandle, error) {
	var count uint32
	if err := ze.Check("zeDriverGet", w.core.DriverGet(&count, nil)); err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, errors.New("no drivers")
	}
	drivers := make([]ze.DriverHandle, count)
	if err := ze.Check("zeDriverGet", w.core.DriverGet(&count, drivers)); err != nil {
		return 0, nil, err
	}
	hDriver := drivers[0]

	count = 0
	if err := ze.Check("zeDeviceGet", w.core.DeviceGet(hDriver, &count, nil)); err != nil {
		return 0, nil, err
	}
	devices := make([]ze.DeviceHandle, count)
	if err := ze.Check("zeDeviceGet", w.core.DeviceGet(hDriver, &count, devices)); err != nil {
		return 0, nil, err
	}
	return hDriver, devices[:count], nil
}

// properties queries every device concurrently.
func (w *world) properties(ctx context.Context, devices []ze.DeviceHandle) ([]ze.DeviceProperties, error) {
	props := make([]ze.DeviceProperties, len(devices))
	g, _ := errgroup.WithContext(ctx)
	for i, hDevice := range devices {
		g.Go(func() error {
			return ze.Check("zeDeviceGetProperties", w.core.DeviceGetProperties(hDevice, &props[i]))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return props, nil
}

// run performs the hello-world sequence on the first GPU: copy host memory
// to the device on an immediate command list and wait for the copy's event.
func (w *world) run(ctx context.Context) error {
	if err := ze.Check("zeInit", w.core.Init(ze.InitFlagGPUOnly)); err != nil {
		return err
	}
	hDriver, devices, err := w.enumerate()
	if err != nil {
		return err
	}
	props, err := w.properties(ctx, devices)
	if err != nil {
		return err
	}

	var hDevice ze.DeviceHandle
	for i, p := range props {
		fmt.Fprintf(w.out, "device %d: %s (vendor %#x, device %#x, uuid %s)\n", i, p.Name, p.VendorID, p.DeviceID, p.UUID)
		if hDevice == 0 && p.Type == ze.DeviceTypeGPU {
			hDevice = devices[i]
		}
	}
	if hDevice == 0 {
		return errors.New("did not find a GPU device")
	}

	var hContext ze.ContextHandle
	if err := ze.Check("zeContextCreate", w.core.ContextCreate(hDriver, &ze.ContextDesc{}, &hContext)); err != nil {
		return err
	}
	defer w.destroy("zeContextDestroy", func() ze.Result { return w.core.ContextDestroy(hContext) })

	queue := ze.CommandQueueDesc{
		Mode:  ze.CommandQueueModeAsynchronous,
		Flags: ze.CommandQueueFlagInOrder | ze.CommandQueueFlagCopyOffloadHint,
	}
	var hList ze.CommandListHandle
	if err := ze.Check("zeCommandListCreateImmediate", w.core.CommandListCreateImmediate(hContext, hDevice, &queue, &hList)); err != nil {
		return err
	}
	defer w.destroy("zeCommandListDestroy", func() ze.Result { return w.core.CommandListDestroy(hList) })

	var hPool ze.EventPoolHandle
	poolDesc := ze.EventPoolDesc{Flags: ze.EventPoolFlagHostVisible, Count: 1}
	if err := ze.Check("zeEventPoolCreate", w.core.EventPoolCreate(hContext, &poolDesc, nil, &hPool)); err != nil {
		return err
	}
	defer w.destroy("zeEventPoolDestroy", func() ze.Result { return w.core.EventPoolDestroy(hPool) })

	var hEvent ze.EventHandle
	eventDesc := ze.EventDesc{Index: 0, Signal: ze.EventScopeFlagHost}
	if err := ze.Check("zeEventCreate", w.core.EventCreate(hPool, &eventDesc, &hEvent)); err != nil {
		return err
	}
	defer w.destroy("zeEventDestroy", func() ze.Result { return w.core.EventDestroy(hEvent) })

	var src, dst ze.Ptr
	if err := ze.Check("zeMemAllocHost", w.core.MemAllocHost(hContext, &ze.HostMemAllocDesc{}, copySize, 64, &src)); err != nil {
		return err
	}
	if !w.leak {
		defer w.destroy("zeMemFree", func() ze.Result { return w.core.MemFree(hContext, src) })
	}
	if err := ze.Check("zeMemAllocDevice", w.core.MemAllocDevice(hContext, &ze.DeviceMemAllocDesc{}, copySize, 64, hDevice, &dst)); err != nil {
		return err
	}
	defer w.destroy("zeMemFree", func() ze.Result { return w.core.MemFree(hContext, dst) })

	if err := ze.Check("zeCommandListAppendMemoryCopy", w.core.CommandListAppendMemoryCopy(hList, dst, src, copySize, hEvent, nil)); err != nil {
		return err
	}
	if err := ze.Check("zeEventHostSynchronize", w.core.EventHostSynchronize(hEvent, math.MaxUint64)); err != nil {
		return err
	}
	fmt.Fprintln(w.out, "Congratulations, the device completed execution!")
	return nil
}

func (w *world) destroy(op string, fn func() ze.Result) {
	if err := ze.Check(op, fn()); err != nil {
		fmt.Fprintln(w.out, err)
	}
}

func newWorld(tables *zel.Tables, out io.Writer, leak bool) *world {
	return &world{core: &tables.Core, out: out, leak: leak}
}
