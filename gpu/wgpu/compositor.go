// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/qthree/viewports"
)

// fenceTimeout bounds the per-frame GPU wait.
const fenceTimeout = 5 * time.Second

// FramePainter records application draws into a viewport's render pass,
// after the clear. Draw data passed to Viewport.Draw that implements
// FramePainter is invoked by [Compositor].
type FramePainter interface {
	RecordDraws(rp hal.RenderPassEncoder)
}

// Compositor renders viewport frames: one pass that clears the color
// attachment and records optional application draws, submitted fenced.
type Compositor struct {
	device *Device
}

var _ viewports.Renderer = (*Compositor)(nil)

// NewCompositor returns a compositor recording on dev.
func NewCompositor(dev *Device) *Compositor {
	return &Compositor{device: dev}
}

// Render implements [viewports.Renderer].
func (c *Compositor) Render(f viewports.Frame, clear gputypes.Color, draw viewports.DrawData) error {
	view, ok := f.Target().(hal.TextureView)
	if !ok {
		return fmt.Errorf("wgpu: foreign frame target %T", f.Target())
	}

	encoder, err := c.device.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "viewport_encoder",
	})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("viewport_frame"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "viewport_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	if p, ok := draw.(FramePainter); ok {
		p.RecordDraws(rp)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer c.device.device.FreeCommandBuffer(cmdBuf)

	fence, err := c.device.device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer c.device.device.DestroyFence(fence)

	if err := c.device.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	fenceOK, err := c.device.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wgpu: wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}
