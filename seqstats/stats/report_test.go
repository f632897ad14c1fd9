// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"bytes"
	"errors"
	"strings"

	check "gopkg.in/check.v1"
)

func (s *S) TestReport(c *check.C) {
	for i, t := range []struct {
		in   string
		want string
	}{
		{
			in: lengthsFasta(10, 20, 30, 40),
			want: "Total size    : 0 mb (100 bp)\n" +
				"Nb sequences  : 4\n" +
				"Deciles       : 10 10 20 20 30 30 30 40 40\n" +
				"Deciles sizes : 0 0 10 0 20 0 0 30 0 40\n" +
				"Median size   : 0.030000 kb\n" +
				"Mean size     : 0.025000 kb\n" +
				"N50 size      : 0 kb\n" +
				"Largest       : 0 kb\n" +
				"Letter counts : (A : 10.00%) (T : 40.00%) (G : 30.00%) (C : 20.00%) (N : 0.00%)\n" +
				"Percent Ns    : 0.000000%\n",
		},
		{
			in: ">a\n" + strings.Repeat("N", 1200) + "\n>b\n" + strings.Repeat("C", 2500) + "\n",
			want: "Total size    : 0 mb (3700 bp)\n" +
				"Nb sequences  : 2\n" +
				"Deciles       : 1200 1200 1200 1200 2500 2500 2500 2500 2500\n" +
				"Deciles sizes : 0 0 0 0 1200 0 0 0 0 2500\n" +
				"Median size   : 2.500000 kb\n" +
				"Mean size     : 1.850000 kb\n" +
				"N50 size      : 2 kb\n" +
				"Largest       : 2 kb\n" +
				"Letter counts : (A : 0.00%) (T : 0.00%) (G : 0.00%) (C : 67.57%) (N : 32.43%)\n" +
				"Percent Ns    : 32.432432%\n",
		},
	} {
		st := newStats(c, t.in)
		var buf bytes.Buffer
		c.Check(st.Report(&buf), check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(buf.String(), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

type failWriter struct{ n int }

var errFull = errors.New("writer full")

func (w *failWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errFull
	}
	w.n--
	return len(b), nil
}

func (s *S) TestReportWriteError(c *check.C) {
	st := newStats(c, ">seq1\nATGCATGC\n")
	w := &failWriter{n: 3}
	c.Check(st.Report(w), check.Equals, errFull)
	c.Check(w.n, check.Equals, 0)
}
