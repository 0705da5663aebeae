// Package charts renders the sales figures as PNG images with gonum/plot.
//
// Three figures are produced from an analysis summary: a bar chart of
// revenue per category, a line chart of monthly revenue and a histogram of
// order amounts. Every figure is 8x5 inches.
package charts
