// Package huffcodes implements a self-describing Huffman codec for byte
// streams.  The encoder counts byte frequencies, builds a code tree, and
// writes the tree ahead of the packed payload, so the decoder needs no
// external dictionary.
//
// Stream layout, all fields MSB-first:
//
//     [32 bits]  N, the number of payload bits
//     [tree]     preorder: internal node = "0" left right,
//                leaf = "1" followed by the 8-bit symbol;
//                absent when N is 0
//     [N bits]   one code per input byte, in input order
//     [0..7]     zero padding to the next byte boundary
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcodes
