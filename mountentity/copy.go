// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"io"
	"sync"
)

// CopyChunkSize is the fixed size of each read performed by Copy.
const CopyChunkSize = 2048

var chunkPool = sync.Pool{
	New: func() any {
		chunk := make([]byte, CopyChunkSize)
		return &chunk
	},
}

// Copy transfers bytes verbatim from source to sink until source returns io.EOF.
// At most CopyChunkSize bytes are held at any time.  Unlike io.Copy, neither
// io.WriterTo nor io.ReaderFrom is consulted.
//
// A write failure is returned immediately and nothing further is written.  Read
// and write failures are reported as *IOError.  Neither stream is closed.
func Copy(sink io.Writer, source io.Reader) (written int64, err error) {
	if source == nil {
		return
	}

	chunkPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(chunkPtr)
	chunk := *chunkPtr

	for {
		n, rerr := source.Read(chunk)
		if n > 0 {
			w, werr := sink.Write(chunk[:n])
			if w > 0 {
				written += int64(w)
			}

			switch {
			case werr != nil:
				return written, newIOError("write", werr)

			case w != n:
				return written, newIOError("write", io.ErrShortWrite)
			}
		}

		switch {
		case rerr == io.EOF:
			return written, nil

		case rerr != nil:
			return written, newIOError("read", rerr)
		}
	}
}
